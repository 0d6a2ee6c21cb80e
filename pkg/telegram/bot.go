package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type bot struct {
	apiURL      string
	secretToken string
	httpClient  *http.Client
}

func newBot(cfg Config) *bot {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &bot{
		apiURL:      fmt.Sprintf("%s/bot%s", cfg.APIBase, cfg.Token),
		secretToken: cfg.SecretToken,
		httpClient:  client,
	}
}

// SetWebhook registers the webhook URL with Telegram.
func (b *bot) SetWebhook(ctx context.Context, webhookURL string) error {
	payload := map[string]string{"url": webhookURL}
	if b.secretToken != "" {
		payload["secret_token"] = b.secretToken
	}
	if err := b.call(ctx, "setWebhook", payload); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	return nil
}

// SendMessage sends text to a chat, split into several messages when it
// exceeds MaxMessageLength.
func (b *bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	for _, chunk := range splitText(text, MaxMessageLength) {
		payload := SendMessageRequest{ChatID: chatID, Text: chunk}
		if err := b.call(ctx, "sendMessage", payload); err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}
	}
	return nil
}

func (b *bot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	payload := SendChatActionRequest{ChatID: chatID, Action: action}
	if err := b.call(ctx, "sendChatAction", payload); err != nil {
		return fmt.Errorf("failed to send chat action: %w", err)
	}
	return nil
}

func (b *bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("%w %d on %s: %s", ErrAPI, resp.StatusCode, method, string(raw))
	}
	if resp.StatusCode != http.StatusOK || !apiResp.OK {
		return fmt.Errorf("%w %d on %s: %s", ErrAPI, resp.StatusCode, method, apiResp.Description)
	}
	return nil
}

// splitText cuts text into chunks of at most limit runes, preferring to break
// after a newline.
func splitText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > limit/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
