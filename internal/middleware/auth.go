package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/pkg/response"
)

// APIKey rejects requests without the configured key in X-API-Key or a
// Bearer Authorization header. It is a no-op when no key is configured.
func (m Middleware) APIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		key := c.GetHeader(HeaderAPIKey)
		if key == "" {
			key = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.APIKey: rejected %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
