package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	// generateContentPath is formatted with the API URL and model name.
	generateContentPath = "%s/models/%s:generateContent"
	// headerAPIKey keeps the key out of URLs, which end up in error messages.
	headerAPIKey = "x-goog-api-key"

	roleModel = "model"
)
