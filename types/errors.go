package types

import "errors"

var (
	// ErrResourceUnavailable is returned when a linguistic resource is missing or unreadable.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrExternalToolUnavailable is returned when the classifier artifacts are missing or the process fails.
	ErrExternalToolUnavailable = errors.New("external tool unavailable")
	ErrInput                   = errors.New("input error")
	ErrArgument                = errors.New("argument error")
)
