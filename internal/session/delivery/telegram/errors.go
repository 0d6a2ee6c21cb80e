package telegram

import (
	"errors"

	"jarvis-assistant/internal/session"
)

var errInvalidSecret = errors.New("invalid telegram secret token")

// errorMessage returns the user-facing reply for a failed turn.
func errorMessage(err error) string {
	if errors.Is(err, session.ErrRateLimited) {
		return rateLimitedMessage
	}
	return failureMessage
}
