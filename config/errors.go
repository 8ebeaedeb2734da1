package config

import "errors"

// Sentinel errors for configuration handling.
var (
	// ErrUnsupportedFormat is returned for unknown file formats.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalid is returned when a configuration cannot be decoded or
	// fails validation.
	ErrInvalid = errors.New("invalid config")
)
