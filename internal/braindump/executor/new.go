package executor

import (
	"context"

	"braindump/internal/braindump"
	"braindump/pkg/gcalendar"
	"braindump/pkg/log"
)

// UserDirectory resolves a user id to the email their calendar lives under.
type UserDirectory interface {
	LookupEmail(ctx context.Context, userID string) (string, error)
}

// Calendar is the narrow calendar-provider verb the dispatcher needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// ActionExecutor converts symbolic actions into side effects. Most action
// types are stubs executed on the phone by the shortcut; CREATE_EVENT is
// live and writes to Google Calendar.
type ActionExecutor struct {
	users    UserDirectory
	calendar Calendar
	l        log.Logger
}

// Ensure ActionExecutor implements the domain interface
var _ braindump.Dispatcher = (*ActionExecutor)(nil)

// New creates a new ActionExecutor
func New(users UserDirectory, calendar Calendar, l log.Logger) *ActionExecutor {
	return &ActionExecutor{
		users:    users,
		calendar: calendar,
		l:        l,
	}
}
