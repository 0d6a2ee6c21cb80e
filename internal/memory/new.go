package memory

import "time"

// DefaultContextWindow is used when a non-positive window is configured.
const DefaultContextWindow = 10

// SessionMemory holds the rolling conversation history, learned preferences
// and active tasks of one session. It is not safe for concurrent use.
type SessionMemory struct {
	contextWindow int
	history       []Message
	preferences   map[string]any
	tasks         []Task
	startedAt     time.Time
	now           func() time.Time
}

// Option customises a SessionMemory.
type Option func(*SessionMemory)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *SessionMemory) {
		m.now = now
	}
}

// New creates an empty SessionMemory that surfaces contextWindow messages as context.
func New(contextWindow int, opts ...Option) *SessionMemory {
	if contextWindow <= 0 {
		contextWindow = DefaultContextWindow
	}
	m := &SessionMemory{
		contextWindow: contextWindow,
		preferences:   make(map[string]any),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.startedAt = m.now()
	return m
}

// ContextWindow returns the configured window size.
func (m *SessionMemory) ContextWindow() int {
	return m.contextWindow
}
