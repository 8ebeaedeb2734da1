// Package transform provides the named text transforms applied to
// placeholder values by the format package.
//
// Every registry created with NewRegistry ships five built-ins:
//
//   - lower: convert to lowercase
//   - upper: convert to uppercase
//   - trim: remove leading and trailing whitespace
//   - ltrim: remove leading whitespace
//   - rtrim: remove trailing whitespace
//
// Each transform coerces its input with coerce.AsString before applying the
// text operation, so a transform always yields a string.
//
// # Extended Transforms
//
// Extended returns a registry with additional transforms:
//
//   - json: quote the text as a JSON string literal
//   - striptags: remove all HTML markup
//   - title: uppercase the first letter of every word
//   - squash: collapse whitespace runs into a single space
//
// # Custom Transforms
//
// Register adds a transform; Alias names a chain of existing transforms:
//
//	r := transform.NewRegistry()
//	r.MustRegister("reverse", func(v any) string { ... })
//	_ = r.Alias("shout", "trim", "upper")
//
// Default is the shared registry behind the package-level format functions.
// It is read-only; start from Default().Clone() or NewRegistry() instead.
//
// Lookup is exact and case-sensitive. An unknown name yields ErrUnknown.
package transform
