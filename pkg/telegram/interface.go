package telegram

import "context"

// IBot is the subset of the Bot API the assistant talks to.
type IBot interface {
	SetWebhook(ctx context.Context, webhookURL string) error
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
}

// New creates a Bot API client.
func New(cfg Config) (IBot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newBot(cfg), nil
}
