package braindump

import "errors"

// Domain-specific errors for the braindump package.
var (
	ErrEmptyText = errors.New("input text is empty")
)
