package session

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"jarvis-assistant/internal/agent/orchestrator"
	"jarvis-assistant/internal/memory"
)

// Summary is the memory summary plus the agents registered for the session.
type Summary struct {
	memory.Summary
	ActiveAgents []string      `json:"active_agents"`
	Tasks        []memory.Task `json:"tasks"`
}

// Factory builds the orchestrator for a new session.
type Factory func(sessionID string) *orchestrator.Orchestrator

// Config tunes the session cache and per-session throttling.
type Config struct {
	MaxSessions int
	TTL         time.Duration
	// RateLimitPerMin caps turns per session; 0 disables the limit.
	RateLimitPerMin int
}

type entry struct {
	mu      sync.Mutex
	orch    *orchestrator.Orchestrator
	limiter *rate.Limiter
}
