package llm

import (
	"context"
	"fmt"
	"strings"

	"jarvis-assistant/internal/gateway"
	"jarvis-assistant/internal/memory"
	"jarvis-assistant/pkg/llmprovider"
)

// Chat sends the system prompt, history and message to the provider chain.
// A trailing history entry that repeats the message is dropped.
func (c *ChatCompleter) Chat(ctx context.Context, message string, history []memory.ContextMessage) (gateway.Result, error) {
	if n := len(history); n > 0 && history[n-1].Role == memory.RoleUser && history[n-1].Content == message {
		history = history[:n-1]
	}

	msgs := make([]llmprovider.Message, 0, len(history)+1)
	for _, m := range history {
		msgs = append(msgs, llmprovider.TextMessage(string(m.Role), m.Content))
	}
	msgs = append(msgs, llmprovider.TextMessage(string(memory.RoleUser), message))

	system := llmprovider.TextMessage("system", c.systemPrompt())
	resp, err := c.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          msgs,
	})
	if err != nil {
		c.l.Errorf(ctx, "%s: generate: %v", LogPrefixChat, err)
		return gateway.Result{Error: err.Error()}, fmt.Errorf("llm chat: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return gateway.Result{Error: ErrEmptyResponse.Error()}, ErrEmptyResponse
	}

	payload := map[string]any{
		"provider": resp.ProviderName,
		"model":    resp.ModelName,
	}
	if resp.Usage != nil {
		payload["total_tokens"] = resp.Usage.TotalTokens
	}

	return gateway.Result{Success: true, Message: text, Payload: payload}, nil
}
