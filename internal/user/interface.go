package user

import (
	"context"

	"braindump/internal/model"
)

// UseCase defines the business logic interface for the user domain.
type UseCase interface {
	// ResolveDevice maps a technical device id (or a phone number the
	// shortcut sent instead) to the full user record.
	ResolveDevice(ctx context.Context, deviceID string) (*model.User, error)

	// VerifyDevice reports whether the device belongs to a registered user
	// with calendar access enabled.
	VerifyDevice(ctx context.Context, deviceID string) bool

	// GetUser retrieves a user by their canonical id (phone number).
	GetUser(ctx context.Context, userID string) (*model.User, error)

	// LookupEmail returns the registered email for a user, used as their
	// calendar id.
	LookupEmail(ctx context.Context, userID string) (string, error)

	// Register verifies calendar access for the given email and persists
	// the user record. Registration fails if the calendar was not shared.
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
}

// CalendarVerifier is the narrow calendar verb registration needs.
type CalendarVerifier interface {
	VerifyAccess(ctx context.Context, calendarID string) bool
}
