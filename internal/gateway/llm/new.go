package llm

import (
	"context"
	"time"

	"jarvis-assistant/internal/gateway"
	"jarvis-assistant/pkg/llmprovider"
	pkgLog "jarvis-assistant/pkg/log"
)

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// ChatCompleter answers general messages with an LLM instead of the remote assistant.
type ChatCompleter struct {
	gen           Generator
	l             pkgLog.Logger
	assistantName string
	location      *time.Location
	now           func() time.Time
}

var _ gateway.ChatCompleter = (*ChatCompleter)(nil)

func New(gen Generator, l pkgLog.Logger, assistantName string, location *time.Location) *ChatCompleter {
	if assistantName == "" {
		assistantName = DefaultAssistantName
	}
	if location == nil {
		location = time.Local
	}
	return &ChatCompleter{
		gen:           gen,
		l:             l,
		assistantName: assistantName,
		location:      location,
		now:           time.Now,
	}
}
