package telegram

import (
	"github.com/gin-gonic/gin"

	"braindump/internal/braindump"
	"braindump/internal/user"
	pkgLog "braindump/pkg/log"
	pkgTelegram "braindump/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	uc braindump.UseCase,
	users user.UseCase,
	bot *pkgTelegram.Bot,
	registrationURL string,
) Handler {
	return &handler{
		l:               l,
		uc:              uc,
		users:           users,
		bot:             bot,
		registrationURL: registrationURL,
	}
}
