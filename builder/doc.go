// Package builder provides StringBuilder, a mutable string with chainable
// edit operations.
//
// # Basic Usage
//
//	sb := builder.New("Bar").
//		Append("Foo").
//		PrependFormat("{1}, {0:upper,trim} ", "  Marcel  ", "Klbert")
//	fmt.Println(sb) // "Klbert, MARCEL BarFoo"
//
// Every value passed to the builder is converted with coerce.AsString.
// Formatting methods delegate to a format.Formatter.
//
// # Errors
//
// Operations that can fail record the first failure and return the builder,
// so calls can be chained and checked once at the end:
//
//	if err := sb.Insert(-1, "x").Remove(0, 2).Err(); err != nil {
//		// errors.Is(err, builder.ErrRange)
//	}
//
// A failing call leaves the text unchanged, and once an error is recorded
// every further mutating call is skipped until ClearErr is called.
//
// # Positions
//
// Insert, Remove, Len and SetLength count runes, not bytes.
//
// # Concurrency
//
// A StringBuilder must not be used from multiple goroutines without
// external synchronization.
package builder
