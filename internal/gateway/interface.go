package gateway

import (
	"context"

	"jarvis-assistant/internal/memory"
)

// ChatCompleter answers free-form messages with the recent conversation as context.
type ChatCompleter interface {
	Chat(ctx context.Context, message string, history []memory.ContextMessage) (Result, error)
}

// AgentRegistrar enables a capability provider for the remote assistant.
type AgentRegistrar interface {
	AddAgent(ctx context.Context, agentID string) (Result, error)
}

// Scheduler creates reminders and recurring jobs.
type Scheduler interface {
	CreateSchedule(ctx context.Context, in ScheduleInput) (Result, error)
}

// Searcher runs a web search for the user's query.
type Searcher interface {
	Search(ctx context.Context, query string) (Result, error)
}

// Gateway is the full remote assistant surface.
type Gateway interface {
	ChatCompleter
	AgentRegistrar
	Scheduler
	Searcher
}
