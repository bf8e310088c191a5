package config

import "errors"

var (
	ErrMissingRoot       = errors.New("config: LOCALIZE_ROOT is required")
	ErrUnsupportedFormat = errors.New("config: unsupported config file format")
	ErrInvalidSchedule   = errors.New("config: invalid reload schedule")
)
