package middleware

import (
	"jarvis-assistant/pkg/log"
)

// Config carries the HTTP API protections.
type Config struct {
	// APIKey, when set, is required on every protected route.
	APIKey string
	// RateLimitPerMin caps requests per client IP; 0 disables it.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	apiKey  string
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:      l,
		apiKey: cfg.APIKey,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
