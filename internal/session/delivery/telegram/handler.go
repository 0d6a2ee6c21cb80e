package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/session"
	pkgLog "jarvis-assistant/pkg/log"
	pkgResponse "jarvis-assistant/pkg/response"
	pkgTelegram "jarvis-assistant/pkg/telegram"
)

type handler struct {
	l           pkgLog.Logger
	uc          session.UseCase
	bot         pkgTelegram.IBot
	secretToken string
}

// HandleWebhook acknowledges the update immediately and handles the message
// in the background; Telegram retries updates that are not answered quickly.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
			h.l.Warnf(ctx, "telegram handler: %v from %s", errInvalidSecret, c.ClientIP())
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := pkgLog.WithRequestID(context.Background(), pkgLog.RequestID(ctx))
	go h.processInBackground(bgCtx, msg)

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processInBackground reports a panic to the chat instead of crashing the process.
func (h *handler) processInBackground(ctx context.Context, msg *pkgTelegram.Message) {
	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "telegram handler: processMessage panicked: %v", r)
			if err := h.bot.SendMessage(ctx, msg.Chat.ID, failureMessage); err != nil {
				h.l.Errorf(ctx, "telegram handler: failed to report panic: %v", err)
			}
		}
	}()

	if err := h.processMessage(ctx, msg); err != nil {
		h.l.Errorf(ctx, "telegram handler: processMessage failed: %v", err)
	}
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	sessionID := fmt.Sprintf(sessionIDFormat, chatID)

	if msg.Voice != nil {
		return h.bot.SendMessage(ctx, chatID, voiceMessage)
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	if cmd, ok := command(text); ok {
		return h.handleCommand(ctx, chatID, sessionID, cmd)
	}

	if err := h.bot.SendChatAction(ctx, chatID, pkgTelegram.ActionTyping); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	res, err := h.uc.Process(ctx, sessionID, text)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.Process %s: %v", sessionID, err)
		return h.bot.SendMessage(ctx, chatID, errorMessage(err))
	}

	return h.bot.SendMessage(ctx, chatID, res.Message)
}

func (h *handler) handleCommand(ctx context.Context, chatID int64, sessionID, cmd string) error {
	switch cmd {
	case commandStart:
		greeting, err := h.uc.Greeting(ctx, sessionID)
		if err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, chatID, greeting+" "+introMessage)

	case commandHelp:
		return h.bot.SendMessage(ctx, chatID, helpMessage)

	case commandStatus:
		sum, err := h.uc.Summary(ctx, sessionID)
		if errors.Is(err, session.ErrSessionNotFound) {
			return h.bot.SendMessage(ctx, chatID, noSessionMessage)
		}
		if err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, chatID, formatStatus(sum))

	case commandReset:
		if err := h.uc.Reset(ctx, sessionID); err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, chatID, resetMessage)
	}

	return h.bot.SendMessage(ctx, chatID, helpMessage)
}

// command extracts "/name" from "/name@bot args". ok is false for plain text.
func command(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	name := strings.Fields(text)[0]
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name), true
}

func formatStatus(sum session.Summary) string {
	agents := "none"
	if len(sum.ActiveAgents) > 0 {
		agents = strings.Join(sum.ActiveAgents, ", ")
	}
	return fmt.Sprintf(statusTemplate,
		sum.SessionDuration.Round(time.Second),
		sum.MessagesExchanged,
		sum.ActiveTasks,
		sum.PreferencesLearned,
		agents,
	)
}
