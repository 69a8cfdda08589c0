package user

import "errors"

// Domain-specific errors for the user package.
var (
	ErrNotFound             = errors.New("user not found")
	ErrNoEmail              = errors.New("no registered email for user")
	ErrCalendarInaccessible = errors.New("calendar is not accessible; make sure it was shared with the agent email")
	ErrMissingPhone         = errors.New("phone number is required")
)
