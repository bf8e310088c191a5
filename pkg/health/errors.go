package health

import "errors"

var (
	// ErrCheckFailed is wrapped by Response.Err when any check fails.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout replaces a deadline error from a check that ran out of time.
	ErrCheckTimeout = errors.New("health: check timeout")
)
