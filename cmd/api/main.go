package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jarvis-assistant/config"
	_ "jarvis-assistant/docs" // Swagger docs
	"jarvis-assistant/internal/bootstrap"
	"jarvis-assistant/internal/httpserver"
	"jarvis-assistant/internal/middleware"
	"jarvis-assistant/internal/session"
	tgDelivery "jarvis-assistant/internal/session/delivery/telegram"
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/telegram"
)

// @title       Jarvis Assistant API
// @description Personal assistant conversations over HTTP and Telegram.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting %s assistant...", cfg.Assistant.Name)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Collaborators and sessions
	parser := bootstrap.NewParser(ctx, cfg, logger)
	deps, err := bootstrap.NewDeps(ctx, cfg, logger, parser)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize collaborators: %v", err)
	}
	factory, err := bootstrap.NewFactory(cfg, logger, deps, parser)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize personality: %v", err)
	}
	sessionUC := session.New(logger, factory, session.Config{
		MaxSessions:     cfg.Session.MaxSessions,
		TTL:             cfg.Session.TTL,
		RateLimitPerMin: cfg.Session.RateLimitPerMin,
	})

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramHandler = setupTelegram(ctx, cfg, logger, sessionUC)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			APIKey:          cfg.HTTPServer.APIKey,
			RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		},
		SessionUC:       sessionUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func setupTelegram(ctx context.Context, cfg *config.Config, logger log.Logger, uc session.UseCase) tgDelivery.Handler {
	bot, err := telegram.New(telegram.Config{
		Token:       cfg.Telegram.BotToken,
		SecretToken: cfg.Telegram.SecretToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Telegram skipped: %v", err)
		return nil
	}

	// Register webhook: configured URL first, then a local ngrok tunnel.
	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, ngrokAPIBase)
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL != "" {
		if whErr := bot.SetWebhook(ctx, webhookURL); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	return tgDelivery.New(logger, uc, bot, cfg.Telegram.SecretToken)
}
