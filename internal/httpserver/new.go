package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/middleware"
	"jarvis-assistant/internal/session"
	tgDelivery "jarvis-assistant/internal/session/delivery/telegram"
	"jarvis-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Middleware

	sessionUC       session.UseCase
	telegramHandler tgDelivery.Handler
	startedAt       time.Time
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config

	SessionUC session.UseCase
	// TelegramHandler is optional; the webhook route is only mounted when set.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      middleware.New(logger, cfg.Middleware),
		sessionUC:       cfg.SessionUC,
		telegramHandler: cfg.TelegramHandler,
		startedAt:       time.Now(),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessionUC == nil {
		return errors.New("session use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
