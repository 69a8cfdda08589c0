package httpserver

import (
	"context"

	bdHTTP "braindump/internal/braindump/delivery/http"
	bdTelegram "braindump/internal/braindump/delivery/telegram"
)

// setupBrainDumpDomain registers the pipeline routes: the shortcut-facing
// POST /brain-dump always, the Telegram webhook only when a bot is wired.
func (srv HTTPServer) setupBrainDumpDomain(ctx context.Context) error {
	h := bdHTTP.New(srv.l, srv.brainDumpUC, srv.userUC, srv.registrationURL)
	bdHTTP.RegisterRoutes(srv.gin, h)
	srv.l.Infof(ctx, "Brain dump domain registered at POST /brain-dump")

	if srv.bot != nil {
		tg := bdTelegram.New(srv.l, srv.brainDumpUC, srv.userUC, srv.bot, srv.registrationURL)
		srv.gin.POST("/webhook/telegram", tg.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
	}

	return nil
}
