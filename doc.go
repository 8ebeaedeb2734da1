// Package jsstrings is a small string toolkit: value-to-text coercion,
// indexed template formatting with transform chains, and a chainable
// string builder.
//
// Each subpackage can be used independently:
//
//   - coerce: convert any value to text (AsString)
//   - transform: named text transforms (lower, upper, trim, ltrim, rtrim)
//   - format: render "{0}, {1:upper,trim}" templates
//   - builder: StringBuilder with append/prepend/insert/remove/replace
//   - config: YAML/TOML/JSON settings, schema and file watching
//
// # Quick Start
//
// Coercion:
//
//	import "github.com/mkloubert/js-strings/coerce"
//	coerce.AsString(nil)                        // ""
//	coerce.AsString(map[string]int{"a": 1})     // {"a":1}
//
// Formatting:
//
//	import "github.com/mkloubert/js-strings/format"
//	s, _ := format.Format("{1}, {0:upper}", "Marcel", "Kloubert")
//	// s: "Kloubert, MARCEL"
//
// Building:
//
//	import "github.com/mkloubert/js-strings/builder"
//	sb := builder.New("Bar").Append("Foo").Insert(0, "[")
//	if err := sb.Err(); err != nil { ... }
//	fmt.Println(sb) // "[BarFoo"
package jsstrings
