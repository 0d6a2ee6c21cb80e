// Package bootstrap wires configuration into the assistant's collaborators so
// the API server and the console CLI build sessions the same way.
package bootstrap

import (
	"context"
	"fmt"

	"jarvis-assistant/config"
	"jarvis-assistant/internal/agent/orchestrator"
	"jarvis-assistant/internal/gateway"
	bhindiGateway "jarvis-assistant/internal/gateway/bhindi"
	calendarGateway "jarvis-assistant/internal/gateway/calendar"
	llmGateway "jarvis-assistant/internal/gateway/llm"
	"jarvis-assistant/internal/personality"
	"jarvis-assistant/internal/session"
	"jarvis-assistant/pkg/bhindi"
	"jarvis-assistant/pkg/datemath"
	"jarvis-assistant/pkg/gcalendar"
	"jarvis-assistant/pkg/llmprovider"
	pkgLog "jarvis-assistant/pkg/log"
)

// NewParser binds the schedule parser to the configured timezone, falling
// back to UTC when the name is unknown.
func NewParser(ctx context.Context, cfg *config.Config, l pkgLog.Logger) *datemath.Parser {
	parser, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}
	return parser
}

// NewDeps builds the remote collaborators. The remote assistant always backs
// agents, schedules and search; chat goes to the LLM when configured, and
// schedules are mirrored to Google Calendar when credentials are present.
func NewDeps(ctx context.Context, cfg *config.Config, l pkgLog.Logger, parser *datemath.Parser) (orchestrator.Deps, error) {
	client, err := bhindi.New(bhindi.Config{
		APIKey:            cfg.Bhindi.APIKey,
		BaseURL:           cfg.Bhindi.BaseURL,
		ChatTimeout:       cfg.Bhindi.ChatTimeout,
		RequestTimeout:    cfg.Bhindi.RequestTimeout,
		RequestsPerSecond: cfg.Bhindi.RequestsPerSecond,
		Logger:            l,
	})
	if err != nil {
		return orchestrator.Deps{}, fmt.Errorf("bhindi client: %w", err)
	}
	remote := bhindiGateway.New(client)

	deps := orchestrator.Deps{
		Chat:      remote,
		Agents:    remote,
		Scheduler: remote,
		Search:    remote,
	}

	if cfg.Chat.Backend == config.ChatBackendLLM {
		manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, l)
		if err != nil {
			return orchestrator.Deps{}, fmt.Errorf("llm providers: %w", err)
		}
		deps.Chat = llmGateway.New(manager, l, cfg.Assistant.Name, parser.Location())
		l.Infof(ctx, "Chat backend: llm")
	}

	deps.Scheduler = withCalendar(ctx, cfg, l, parser, deps.Scheduler)
	return deps, nil
}

func withCalendar(ctx context.Context, cfg *config.Config, l pkgLog.Logger, parser *datemath.Parser, next gateway.Scheduler) gateway.Scheduler {
	gc := cfg.GoogleCalendar
	if gc.CredentialsPath == "" {
		return next
	}

	cal, err := gcalendar.NewClientFromCredentialsFile(ctx, gc.CredentialsPath, gc.TokenPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		l.Warn(ctx, "Run `jarvis gcal-auth` to generate a token")
		return next
	}

	l.Info(ctx, "Google Calendar mirror enabled")
	return calendarGateway.New(next, cal, l, gc.CalendarID, parser.Location())
}

// NewFactory returns a session factory. Every session gets its own formatter
// so randomised styles never share state across goroutines.
func NewFactory(cfg *config.Config, l pkgLog.Logger, deps orchestrator.Deps, parser *datemath.Parser) (session.Factory, error) {
	if _, err := personality.New(cfg.Assistant.Personality); err != nil {
		return nil, err
	}

	return func(string) *orchestrator.Orchestrator {
		formatter, _ := personality.New(cfg.Assistant.Personality)
		return orchestrator.New(l, deps, parser,
			orchestrator.WithContextWindow(cfg.Memory.ContextWindow),
			orchestrator.WithFormatter(formatter),
		)
	}, nil
}
