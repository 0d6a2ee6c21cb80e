package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jarvis-assistant/internal/agent/orchestrator"
	"jarvis-assistant/internal/memory"
)

// acquire returns the locked entry for id, creating it on first use.
// Every access slides the session's expiry. Callers must unlock.
func (m *manager) acquire(id string) (*entry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidSessionID
	}

	m.mu.Lock()
	e, ok := m.sessions.Get(id)
	if !ok {
		e = &entry{
			orch:    m.factory(id),
			limiter: m.newLimiter(),
		}
	}
	m.sessions.Add(id, e)
	m.mu.Unlock()

	e.mu.Lock()
	return e, nil
}

// lookup returns the locked entry for an existing session without creating
// it or sliding its expiry. Callers must unlock.
func (m *manager) lookup(id string) (*entry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidSessionID
	}

	m.mu.Lock()
	e, ok := m.sessions.Get(id)
	m.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	e.mu.Lock()
	return e, nil
}

func (m *manager) onEvict(id string, _ *entry) {
	m.l.Debugf(context.Background(), "%s: session %s expired", LogPrefixEvict, id)
}

func (m *manager) Process(ctx context.Context, sessionID, text string) (orchestrator.ProcessResult, error) {
	if strings.TrimSpace(text) == "" {
		return orchestrator.ProcessResult{}, ErrEmptyMessage
	}

	e, err := m.acquire(sessionID)
	if err != nil {
		return orchestrator.ProcessResult{}, err
	}
	defer e.mu.Unlock()

	if !e.limiter.Allow() {
		m.l.Warnf(ctx, "%s: session %s rate limited", LogPrefixProcess, sessionID)
		return orchestrator.ProcessResult{}, ErrRateLimited
	}

	return e.orch.ProcessMessage(ctx, text), nil
}

// Suggestion depends only on the clock, so unknown sessions are answered by a
// throwaway orchestrator that is never stored.
func (m *manager) Suggestion(ctx context.Context, sessionID string, now time.Time) (string, bool, error) {
	e, err := m.lookup(sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		text, ok := m.factory(sessionID).ProactiveSuggestion(now)
		return text, ok, nil
	}
	if err != nil {
		return "", false, err
	}
	defer e.mu.Unlock()

	text, ok := e.orch.ProactiveSuggestion(now)
	return text, ok, nil
}

// Summary reports ErrSessionNotFound for sessions that never started or expired.
func (m *manager) Summary(ctx context.Context, sessionID string) (Summary, error) {
	e, err := m.lookup(sessionID)
	if err != nil {
		return Summary{}, err
	}
	defer e.mu.Unlock()

	return Summary{
		Summary:      e.orch.Memory().GetSummary(),
		ActiveAgents: e.orch.ActiveAgents(),
		Tasks:        e.orch.Memory().ActiveTasks(),
	}, nil
}

func (m *manager) SetPreference(ctx context.Context, sessionID, key string, value any) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	e, err := m.acquire(sessionID)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()

	e.orch.Memory().AddPreference(key, value)
	return nil
}

// AddTask tracks task in the session, assigning a UUID when it has no id.
func (m *manager) AddTask(ctx context.Context, sessionID string, task memory.Task) (memory.Task, error) {
	e, err := m.acquire(sessionID)
	if err != nil {
		return memory.Task{}, err
	}
	defer e.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	return e.orch.Memory().AddTask(task), nil
}

func (m *manager) CompleteTask(ctx context.Context, sessionID, taskID string) error {
	e, err := m.acquire(sessionID)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()

	e.orch.Memory().CompleteTask(taskID)
	return nil
}

func (m *manager) Reset(ctx context.Context, sessionID string) error {
	e, err := m.acquire(sessionID)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()

	e.orch.Reset()
	return nil
}

// Greeting opens the session when it does not exist yet.
func (m *manager) Greeting(ctx context.Context, sessionID string) (string, error) {
	e, err := m.acquire(sessionID)
	if err != nil {
		return "", err
	}
	defer e.mu.Unlock()

	return e.orch.Formatter().Greeting(), nil
}

// Len reports the number of live sessions.
func (m *manager) Len() int {
	return m.sessions.Len()
}
