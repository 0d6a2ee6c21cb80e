package telegram

import "errors"

var (
	ErrMissingToken = errors.New("telegram bot token is required")
	ErrAPI          = errors.New("telegram api error")
)
