package llmprovider

import (
	"context"
	"strings"
)

// Provider is one model behind a vendor API.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Name() string
	Model() string
}

// Request is a chat turn: an optional system instruction followed by the
// conversation, oldest first, ending with the user's message.
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	// Zero values leave the provider defaults in place.
	Temperature float64
	MaxTokens   int
}

// Message roles are "user", "assistant" and "system"; adapters translate them.
type Message struct {
	Role  string
	Parts []Part
}

type Part struct {
	Text string
}

func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	// Usage is nil when the provider does not report token counts.
	Usage *Usage
}

// Text concatenates the reply parts.
func (r *Response) Text() string {
	var b strings.Builder
	for _, p := range r.Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
