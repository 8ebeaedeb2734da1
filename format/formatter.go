package format

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/mkloubert/js-strings/coerce"
	"github.com/mkloubert/js-strings/transform"
)

// Formatter renders templates using the transforms of a registry.
// A Formatter is safe for concurrent use if its registry is.
type Formatter struct {
	registry *transform.Registry
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithRegistry sets the transform registry. A nil registry is ignored.
func WithRegistry(r *transform.Registry) Option {
	return func(f *Formatter) {
		if r != nil {
			f.registry = r
		}
	}
}

// New creates a Formatter. Without options it uses transform.Default().
func New(opts ...Option) *Formatter {
	f := &Formatter{registry: transform.Default()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFormatter = New()

// Default returns the Formatter used by the package-level functions.
func Default() *Formatter {
	return defaultFormatter
}

// Registry returns the formatter's transform registry.
func (f *Formatter) Registry() *transform.Registry {
	return f.registry
}

// Format renders tmpl with args as the argument list.
func (f *Formatter) Format(tmpl string, args ...any) (string, error) {
	return f.render(tmpl, args)
}

// FormatArray renders tmpl with the items of an iterable as the argument
// list. See Args for the accepted iterables.
func (f *Formatter) FormatArray(tmpl string, args any) (string, error) {
	list, err := Args(args)
	if err != nil {
		return "", err
	}
	return f.render(tmpl, list)
}

// FormatSeq renders tmpl with the values yielded by seq.
func (f *Formatter) FormatSeq(tmpl string, seq iter.Seq[any]) (string, error) {
	if seq == nil {
		return f.render(tmpl, nil)
	}
	return f.render(tmpl, slices.Collect(seq))
}

// MustFormat is like Format but panics on error.
func (f *Formatter) MustFormat(tmpl string, args ...any) string {
	s, err := f.Format(tmpl, args...)
	if err != nil {
		panic(fmt.Sprintf("format.MustFormat(%q): %v", tmpl, err))
	}
	return s
}

// Validate checks that every transform referenced by tmpl is registered.
func (f *Formatter) Validate(tmpl string) error {
	for _, p := range Parse(tmpl) {
		if _, err := f.registry.Resolve(p.Transforms); err != nil {
			return &Error{Placeholder: p.Raw, Offset: p.Start, Err: err}
		}
	}
	return nil
}

func (f *Formatter) render(tmpl string, args []any) (string, error) {
	placeholders := Parse(tmpl)
	if len(placeholders) == 0 {
		return tmpl, nil
	}

	var b strings.Builder
	b.Grow(len(tmpl))

	last := 0
	for _, p := range placeholders {
		b.WriteString(tmpl[last:p.Start])

		v, err := f.resolve(p, args)
		if err != nil {
			return "", &Error{Placeholder: p.Raw, Offset: p.Start, Err: err}
		}
		if coerce.IsUndefined(v) {
			b.WriteString(p.Raw)
		} else {
			b.WriteString(coerce.AsString(v))
		}

		last = p.End
	}
	b.WriteString(tmpl[last:])

	return b.String(), nil
}

// resolve returns the argument selected by p after its transform chain.
// Out of range indexes resolve to coerce.Undefined.
func (f *Formatter) resolve(p Placeholder, args []any) (any, error) {
	v := coerce.Undefined
	if p.Index >= 0 && p.Index < len(args) {
		v = args[p.Index]
	}
	if !p.HasTransforms {
		return v, nil
	}

	funcs, err := f.registry.Resolve(p.Transforms)
	if err != nil {
		return nil, err
	}
	for _, fn := range funcs {
		v = fn(v)
	}
	return v, nil
}

// Format renders tmpl with the default Formatter.
func Format(tmpl string, args ...any) (string, error) {
	return defaultFormatter.Format(tmpl, args...)
}

// FormatArray renders tmpl with the items of an iterable using the default
// Formatter.
func FormatArray(tmpl string, args any) (string, error) {
	return defaultFormatter.FormatArray(tmpl, args)
}

// FormatSeq renders tmpl with the values of seq using the default Formatter.
func FormatSeq(tmpl string, seq iter.Seq[any]) (string, error) {
	return defaultFormatter.FormatSeq(tmpl, seq)
}

// MustFormat renders tmpl with the default Formatter, panicking on error.
func MustFormat(tmpl string, args ...any) string {
	return defaultFormatter.MustFormat(tmpl, args...)
}
