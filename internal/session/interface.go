package session

import (
	"context"
	"time"

	"jarvis-assistant/internal/agent/orchestrator"
	"jarvis-assistant/internal/memory"
)

// UseCase hosts one orchestrator per conversation.
// Calls for the same session are serialised; different sessions run in parallel.
// Summary and Suggestion never create a session or extend its expiry.
type UseCase interface {
	Process(ctx context.Context, sessionID, text string) (orchestrator.ProcessResult, error)
	Suggestion(ctx context.Context, sessionID string, now time.Time) (string, bool, error)
	Summary(ctx context.Context, sessionID string) (Summary, error)
	SetPreference(ctx context.Context, sessionID, key string, value any) error
	AddTask(ctx context.Context, sessionID string, task memory.Task) (memory.Task, error)
	CompleteTask(ctx context.Context, sessionID, taskID string) error
	Reset(ctx context.Context, sessionID string) error
	Greeting(ctx context.Context, sessionID string) (string, error)
	Len() int
}
