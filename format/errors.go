package format

import (
	"errors"
	"fmt"

	"github.com/mkloubert/js-strings/transform"
)

// Sentinel errors for format operations.
var (
	// ErrNotIterable is returned when an argument list cannot be iterated.
	ErrNotIterable = errors.New("arguments are not iterable")

	// ErrUnknownTransform is returned when a placeholder names an
	// unregistered transform.
	ErrUnknownTransform = transform.ErrUnknown
)

// Error reports a placeholder that could not be rendered.
type Error struct {
	Placeholder string // Raw placeholder text, e.g. "{0:upper}"
	Offset      int    // Byte offset of the placeholder in the template
	Err         error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("format %s at offset %d: %v", e.Placeholder, e.Offset, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}
