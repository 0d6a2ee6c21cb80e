package telegram

import "time"

const (
	DefaultAPIBase = "https://api.telegram.org"
	DefaultTimeout = 10 * time.Second

	// MaxMessageLength is the Bot API limit on sendMessage text, in UTF-16 units.
	// Counting runes keeps us under it for everything outside the astral planes.
	MaxMessageLength = 4096

	ActionTyping = "typing"

	HeaderSecretToken = "X-Telegram-Bot-Api-Secret-Token"
)
