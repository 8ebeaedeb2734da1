package transform

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrUnknown is returned when a transform name is not registered.
	ErrUnknown = errors.New("unknown transform")

	// ErrDuplicate is returned when registering a name that already exists.
	ErrDuplicate = errors.New("transform already registered")

	// ErrInvalidName is returned for names that cannot appear in a placeholder.
	ErrInvalidName = errors.New("invalid transform name")

	// ErrReadOnly is returned when changing the shared Default registry.
	ErrReadOnly = errors.New("transform registry is read-only")
)
