package httpserver

import (
	"context"

	userHTTP "braindump/internal/user/delivery/http"
)

// setupUserDomain registers onboarding routes. The user usecase itself is
// built in cmd/api because the brain dump domain shares it.
func (srv HTTPServer) setupUserDomain(ctx context.Context) error {
	h := userHTTP.New(srv.l, srv.userUC)
	userHTTP.RegisterRoutes(srv.gin, h)

	srv.l.Infof(ctx, "User domain registered (verify-user, register)")
	return nil
}
