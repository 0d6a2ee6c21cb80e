package llmprovider

import (
	"context"

	"jarvis-assistant/pkg/gemini"
)

const (
	ProviderGemini = "gemini"

	roleAssistant = "assistant"
	roleModel     = "model"
)

// GeminiAdapter exposes a gemini client as a Provider.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent maps roles to Gemini's and copies token usage when reported.
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, &ProviderError{Provider: ProviderGemini, Model: a.client.Model(), Err: ErrInvalidRequest}
	}

	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.Generate(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderGemini, Model: a.client.Model(), Err: err}
	}

	var usage *Usage
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Gemini calls the assistant role "model".
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	role := msg.Role
	if role == roleAssistant {
		role = roleModel
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	role := content.Role
	if role == roleModel || role == "" {
		role = roleAssistant
	}
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: role, Parts: parts}
}
