// Package format renders templates with indexed placeholders.
//
// # Syntax
//
// A placeholder is an argument index in braces, optionally followed by a
// colon and a comma-separated list of transform names:
//
//	{0}
//	{1:upper}
//	{1:lower,trim}
//
// Transforms run left to right; names are trimmed and empty names are
// ignored. Anything that does not match this grammar, such as "{x}", "{ 1}"
// or a lone brace, is copied to the output unchanged. There is no escaping:
// the first '}' after "{digits:" closes the placeholder.
//
// # Substitution
//
// The placeholder index selects an argument. The argument, after the
// transform chain, is coerced with coerce.AsString and substituted. If the
// result is still coerce.Undefined, because the index is out of range or the
// argument itself is Undefined and no transform ran, the placeholder text is
// kept as is. A nil argument is substituted as the empty string:
//
//	format.Format("{1}, {0} Joachim", nil, coerce.Undefined)
//	// "{1},  Joachim"
//
// # Arguments
//
// FormatArray accepts any finite iterable: slices, arrays, iter.Seq values,
// receive channels (read until closed) and strings (one argument per
// character). Order of iteration becomes the index order.
//
// # Errors
//
// A placeholder naming a transform that is not registered fails the whole
// call with an *Error wrapping transform.ErrUnknown. No partial output is
// returned.
//
// # Example
//
//	s, err := format.Format("{1:lower,trim}, {0:upper}", "Marcel", "  kloubert  ")
//	// s: "kloubert, MARCEL"
package format
