package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"
	HeaderAPIKey    = "X-API-Key"

	rateLimitMaxClients = 1000
	rateLimitTTL        = 5 * time.Minute
)
