package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"braindump/internal/braindump"
	"braindump/internal/model"
	"braindump/internal/user"
	pkgLog "braindump/pkg/log"
	pkgResponse "braindump/pkg/response"
	pkgTelegram "braindump/pkg/telegram"
)

type handler struct {
	l               pkgLog.Logger
	uc              braindump.UseCase
	users           user.UseCase
	bot             *pkgTelegram.Bot
	registrationURL string
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and runs the pipeline in a
// background goroutine: Telegram expects an answer within a few seconds
// and a classification round trip can take longer than that.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from the request context, it gets cancelled after the response
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, msgProcessingFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		// Transcription happens on the phone; raw voice notes can't be
		// processed here.
		if msg.Voice != nil {
			return h.bot.SendMessage(msg.Chat.ID, msgVoiceUnsupported)
		}
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, msgWelcome, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, msgHelp, "Markdown")
	}

	// Telegram users share the device gate with the shortcut: the chat's
	// synthetic device id has to be registered before the pipeline runs.
	deviceID := fmt.Sprintf("telegram_%d", msg.From.ID)
	record, err := h.users.ResolveDevice(ctx, deviceID)
	if err != nil || !record.CalendarEnabled {
		h.l.Infof(ctx, "telegram handler: chat %d not registered, sending registration link", msg.Chat.ID)
		return h.bot.SendMessage(msg.Chat.ID,
			fmt.Sprintf("%s\n%s", msgNeedsRegistration, h.registrationURL))
	}

	sc := model.Scope{
		UserID:   record.UserID,
		Username: msg.From.Username,
	}

	out, err := h.uc.Process(ctx, sc, braindump.ProcessInput{Text: msg.Text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Process failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, msgProcessingFailed)
	}

	return h.bot.SendMessage(msg.Chat.ID, replyText(out))
}

// replyText flattens a pipeline response into the chat reply. Every
// variant carries a user-facing message; that message IS the reply.
func replyText(resp braindump.Response) string {
	switch r := resp.(type) {
	case braindump.NoteResponse:
		return r.Message
	case braindump.ReminderResponse:
		return r.Message
	case braindump.GenericResponse:
		return r.Message
	default:
		return msgProcessingFailed
	}
}
