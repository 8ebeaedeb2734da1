package builder

import (
	"errors"
	"fmt"
)

// Sentinel errors for builder operations.
var (
	// ErrType is returned when an argument has the wrong kind.
	ErrType = errors.New("invalid argument type")

	// ErrRange is returned when a position or length is negative.
	ErrRange = errors.New("argument out of range")
)

// Error records the builder operation that failed.
type Error struct {
	Op  string // Operation that failed ("insert", "appendFormat", ...)
	Err error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("builder %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

func rangeError(op, arg string, n int) *Error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %s must be >= 0, got %d", ErrRange, arg, n)}
}
