package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/session"
	"jarvis-assistant/pkg/response"
)

var errSessionIDRequired = errors.New("session_id is required")

// respondError maps use-case errors to HTTP responses.
func (h *handler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, session.ErrInvalidSessionID),
		errors.Is(err, session.ErrEmptyMessage),
		errors.Is(err, session.ErrEmptyKey):
		response.Error(c, err, nil)
	case errors.Is(err, session.ErrSessionNotFound):
		response.NotFound(c, err)
	case errors.Is(err, session.ErrRateLimited):
		response.TooManyRequests(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
		response.InternalError(c, err)
	}
}
