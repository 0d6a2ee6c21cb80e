package telegram

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/session"
	pkgLog "jarvis-assistant/pkg/log"
	pkgTelegram "jarvis-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler. secretToken, when set, must
// match the header Telegram sends with every update.
func New(l pkgLog.Logger, uc session.UseCase, bot pkgTelegram.IBot, secretToken string) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: secretToken,
	}
}
