package coerce

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// ErrorKinder is implemented by errors that name their own kind.
type ErrorKinder interface {
	ErrorKind() string
}

// Stacker is implemented by errors that carry a stack trace.
type Stacker interface {
	Stack() string
}

// ErrorKind returns the kind name used in the error header: ErrorKind() if
// the error implements ErrorKinder, otherwise the name of its dynamic type.
func ErrorKind(err error) string {
	if k, ok := err.(ErrorKinder); ok {
		return k.ErrorKind()
	}

	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// errorText renders err as a header line, a blank line and its stack.
func errorText(err error) string {
	var stack string
	var s Stacker
	if errors.As(err, &s) {
		stack = s.Stack()
	}

	out := fmt.Sprintf("ERROR [%s]: %s\n\n%s", ErrorKind(err), err.Error(), stack)
	return strings.TrimSpace(out)
}

// stackError attaches a captured stack to an error.
type stackError struct {
	err   error
	stack string
}

// WithStack returns err annotated with the stack of the caller.
// The returned error keeps the kind name of err. WithStack(nil) returns nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return &stackError{err: err, stack: callers(2)}
}

func (e *stackError) Error() string { return e.err.Error() }

func (e *stackError) Unwrap() error { return e.err }

func (e *stackError) Stack() string { return e.stack }

func (e *stackError) ErrorKind() string { return ErrorKind(e.err) }

// callers formats the stack above the given number of frames.
func callers(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "    at %s (%s:%d)\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}
