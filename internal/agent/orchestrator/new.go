package orchestrator

import (
	"time"

	"jarvis-assistant/internal/agent"
	"jarvis-assistant/internal/gateway"
	"jarvis-assistant/internal/memory"
	"jarvis-assistant/internal/personality"
	"jarvis-assistant/internal/router"
	"jarvis-assistant/pkg/datemath"
	pkgLog "jarvis-assistant/pkg/log"
)

// Deps are the remote collaborators the orchestrator routes to.
type Deps struct {
	Chat      gateway.ChatCompleter
	Agents    gateway.AgentRegistrar
	Scheduler gateway.Scheduler
	Search    gateway.Searcher
}

// Orchestrator owns one conversation: its memory, its active agents and the
// routing of every message. It is not safe for concurrent use.
type Orchestrator struct {
	l         pkgLog.Logger
	deps      Deps
	router    router.Router
	parser    *datemath.Parser
	formatter personality.Formatter
	memory    *memory.SessionMemory
	agents    *agent.ActiveSet
	now       func() time.Time
}

type options struct {
	contextWindow int
	formatter     personality.Formatter
	router        router.Router
	now           func() time.Time
}

// Option customises an Orchestrator.
type Option func(*options)

// WithContextWindow sets how many messages are sent to the chat collaborator.
func WithContextWindow(n int) Option {
	return func(o *options) { o.contextWindow = n }
}

func WithFormatter(f personality.Formatter) Option {
	return func(o *options) { o.formatter = f }
}

func WithRouter(r router.Router) Option {
	return func(o *options) { o.router = r }
}

// WithClock overrides the time source for the orchestrator and its memory.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func New(l pkgLog.Logger, deps Deps, parser *datemath.Parser, opts ...Option) *Orchestrator {
	cfg := options{
		contextWindow: memory.DefaultContextWindow,
		router:        router.New(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.formatter == nil {
		cfg.formatter = personality.NewPlain(personality.DefaultPhrases())
	}

	return &Orchestrator{
		l:         l,
		deps:      deps,
		router:    cfg.router,
		parser:    parser,
		formatter: cfg.formatter,
		memory:    memory.New(cfg.contextWindow, memory.WithClock(cfg.now)),
		agents:    agent.NewActiveSet(),
		now:       cfg.now,
	}
}
