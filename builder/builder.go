package builder

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mkloubert/js-strings/coerce"
	"github.com/mkloubert/js-strings/format"
)

// DefaultNewline is the line terminator used by AppendLine and PrependLine
// unless overridden per builder.
const DefaultNewline = "\n"

// StringBuilder is a mutable string. The zero value is an empty builder
// using DefaultNewline and format.Default().
type StringBuilder struct {
	value string

	newline    string
	hasNewline bool
	formatter  *format.Formatter

	err error
}

// Option configures a StringBuilder.
type Option func(*StringBuilder)

// WithNewline overrides the line terminator of the builder.
func WithNewline(newline string) Option {
	return func(sb *StringBuilder) {
		sb.newline = newline
		sb.hasNewline = true
	}
}

// WithFormatter sets the formatter used by the Format methods.
func WithFormatter(f *format.Formatter) Option {
	return func(sb *StringBuilder) {
		sb.formatter = f
	}
}

// New creates a builder holding the text of initial. A nil initial value
// yields an empty builder.
func New(initial any, opts ...Option) *StringBuilder {
	sb := &StringBuilder{value: coerce.AsString(initial)}
	for _, opt := range opts {
		opt(sb)
	}
	return sb
}

// Newline returns the line terminator used by AppendLine and PrependLine.
func (sb *StringBuilder) Newline() string {
	if sb.hasNewline {
		return sb.newline
	}
	return DefaultNewline
}

// SetNewline overrides the line terminator.
func (sb *StringBuilder) SetNewline(newline string) *StringBuilder {
	WithNewline(newline)(sb)
	return sb
}

func (sb *StringBuilder) activeFormatter() *format.Formatter {
	if sb.formatter != nil {
		return sb.formatter
	}
	return format.Default()
}

// Err returns the first error recorded by a chained operation.
func (sb *StringBuilder) Err() error {
	return sb.err
}

// ClearErr forgets the recorded error so that mutations apply again.
func (sb *StringBuilder) ClearErr() *StringBuilder {
	sb.err = nil
	return sb
}

// update applies fn to the text unless an error is already recorded.
// The text is only replaced when fn succeeds.
func (sb *StringBuilder) update(op string, fn func(current string) (string, error)) *StringBuilder {
	if sb.err != nil {
		return sb
	}

	next, err := fn(sb.value)
	if err != nil {
		var be *Error
		if errors.As(err, &be) {
			sb.err = be
		} else {
			sb.err = &Error{Op: op, Err: classify(err)}
		}
		return sb
	}

	sb.value = next
	return sb
}

// classify marks argument list failures as type violations.
func classify(err error) error {
	if errors.Is(err, format.ErrNotIterable) {
		return fmt.Errorf("%w: %w", ErrType, err)
	}
	return err
}

// Append adds the text of v at the end.
func (sb *StringBuilder) Append(v any) *StringBuilder {
	return sb.update("append", func(s string) (string, error) {
		return s + coerce.AsString(v), nil
	})
}

// Prepend adds the text of v at the beginning.
func (sb *StringBuilder) Prepend(v any) *StringBuilder {
	return sb.update("prepend", func(s string) (string, error) {
		return coerce.AsString(v) + s, nil
	})
}

// AppendFormat formats tmpl with args and appends the result.
func (sb *StringBuilder) AppendFormat(tmpl string, args ...any) *StringBuilder {
	return sb.update("appendFormat", func(s string) (string, error) {
		text, err := sb.activeFormatter().Format(tmpl, args...)
		return s + text, err
	})
}

// PrependFormat formats tmpl with args and prepends the result.
func (sb *StringBuilder) PrependFormat(tmpl string, args ...any) *StringBuilder {
	return sb.update("prependFormat", func(s string) (string, error) {
		text, err := sb.activeFormatter().Format(tmpl, args...)
		return text + s, err
	})
}

// AppendFormatArray formats tmpl with the items of an iterable and appends
// the result. See format.Args for the accepted iterables.
func (sb *StringBuilder) AppendFormatArray(tmpl string, args any) *StringBuilder {
	return sb.update("appendFormatArray", func(s string) (string, error) {
		text, err := sb.activeFormatter().FormatArray(tmpl, args)
		return s + text, err
	})
}

// PrependFormatArray formats tmpl with the items of an iterable and
// prepends the result.
func (sb *StringBuilder) PrependFormatArray(tmpl string, args any) *StringBuilder {
	return sb.update("prependFormatArray", func(s string) (string, error) {
		text, err := sb.activeFormatter().FormatArray(tmpl, args)
		return text + s, err
	})
}

// AppendJoin appends the texts of values separated by sep.
func (sb *StringBuilder) AppendJoin(sep string, values ...any) *StringBuilder {
	return sb.update("appendJoin", func(s string) (string, error) {
		return s + coerce.Join(sep, values...), nil
	})
}

// PrependJoin prepends the texts of values separated by sep.
func (sb *StringBuilder) PrependJoin(sep string, values ...any) *StringBuilder {
	return sb.update("prependJoin", func(s string) (string, error) {
		return coerce.Join(sep, values...) + s, nil
	})
}

// AppendJoinArray appends the texts of the items of an iterable separated
// by sep.
func (sb *StringBuilder) AppendJoinArray(sep string, values any) *StringBuilder {
	return sb.update("appendJoinArray", func(s string) (string, error) {
		list, err := format.Args(values)
		return s + coerce.Join(sep, list...), err
	})
}

// PrependJoinArray prepends the texts of the items of an iterable separated
// by sep.
func (sb *StringBuilder) PrependJoinArray(sep string, values any) *StringBuilder {
	return sb.update("prependJoinArray", func(s string) (string, error) {
		list, err := format.Args(values)
		return coerce.Join(sep, list...) + s, err
	})
}

// AppendLine appends the text of v followed by the newline.
func (sb *StringBuilder) AppendLine(v any) *StringBuilder {
	return sb.update("appendLine", func(s string) (string, error) {
		return s + coerce.AsString(v) + sb.Newline(), nil
	})
}

// PrependLine prepends the text of v followed by the newline.
func (sb *StringBuilder) PrependLine(v any) *StringBuilder {
	return sb.update("prependLine", func(s string) (string, error) {
		return coerce.AsString(v) + sb.Newline() + s, nil
	})
}

// Insert inserts the text of v before the rune at position start.
// A start beyond the end appends.
func (sb *StringBuilder) Insert(start int, v any) *StringBuilder {
	return sb.update("insert", func(s string) (string, error) {
		if start < 0 {
			return s, rangeError("insert", "start", start)
		}
		at := byteOffset(s, start)
		return s[:at] + coerce.AsString(v) + s[at:], nil
	})
}

// Remove deletes length runes beginning at start. Ranges reaching past the
// end are clipped.
func (sb *StringBuilder) Remove(start, length int) *StringBuilder {
	return sb.update("remove", func(s string) (string, error) {
		if start < 0 {
			return s, rangeError("remove", "start", start)
		}
		if length < 0 {
			return s, rangeError("remove", "length", length)
		}
		from := byteOffset(s, start)
		to := from + byteOffset(s[from:], length)
		return s[:from] + s[to:], nil
	})
}

// Clear empties the builder.
func (sb *StringBuilder) Clear() *StringBuilder {
	return sb.update("clear", func(string) (string, error) {
		return "", nil
	})
}

// Len returns the number of runes.
func (sb *StringBuilder) Len() int {
	return utf8.RuneCountInString(sb.value)
}

// SetLength truncates the text to n runes. Growing is a no-op.
func (sb *StringBuilder) SetLength(n int) *StringBuilder {
	return sb.update("setLength", func(s string) (string, error) {
		if n < 0 {
			return s, rangeError("setLength", "length", n)
		}
		return s[:byteOffset(s, n)], nil
	})
}

// IsEmpty reports whether the text is empty.
func (sb *StringBuilder) IsEmpty() bool {
	return sb.value == ""
}

// Clone returns a new builder with the same text, newline and formatter.
// The recorded error is not copied.
func (sb *StringBuilder) Clone() *StringBuilder {
	return &StringBuilder{
		value:      sb.value,
		newline:    sb.newline,
		hasNewline: sb.hasNewline,
		formatter:  sb.formatter,
	}
}

// Equals reports whether the text equals the text of other.
func (sb *StringBuilder) Equals(other any) bool {
	return sb.value == coerce.AsString(other)
}

// String returns the current text.
func (sb *StringBuilder) String() string {
	return sb.value
}

// MarshalText implements encoding.TextMarshaler.
func (sb *StringBuilder) MarshalText() ([]byte, error) {
	return []byte(sb.value), nil
}

// MarshalJSON encodes the current text as a JSON string.
func (sb *StringBuilder) MarshalJSON() ([]byte, error) {
	return json.Marshal(sb.value)
}

// byteOffset returns the byte offset of rune position n in s, clipped to
// len(s).
func byteOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
