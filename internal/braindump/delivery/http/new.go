package http

import (
	"braindump/internal/braindump"
	"braindump/internal/user"
	"braindump/pkg/log"
)

type handler struct {
	l               log.Logger
	uc              braindump.UseCase
	users           user.UseCase
	registrationURL string
}

// New creates a new HTTP handler for the brain dump pipeline.
// registrationURL is handed to unregistered devices so the shortcut can
// open the onboarding page.
func New(l log.Logger, uc braindump.UseCase, users user.UseCase, registrationURL string) *handler {
	return &handler{
		l:               l,
		uc:              uc,
		users:           users,
		registrationURL: registrationURL,
	}
}
