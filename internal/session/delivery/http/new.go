package http

import (
	"time"

	"jarvis-assistant/internal/session"
	"jarvis-assistant/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  session.UseCase
	now func() time.Time
}

// New creates the HTTP handler for the session API.
func New(l log.Logger, uc session.UseCase) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: time.Now,
	}
}
