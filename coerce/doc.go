// Package coerce converts arbitrary Go values to text.
//
// AsString is total: every value, including nil and the Undefined sentinel,
// produces a string. Values are classified by KindOf and converted with the
// first matching rule:
//
//   - Text (string, []byte, []rune and string-kinded types) is returned as is.
//   - Null (nil, nil pointers, nil maps ...) and Undefined become "".
//   - Errors render as "ERROR [<kind>]: <message>" followed by a blank line
//     and the stack, if the error carries one.
//   - fmt.Stringer and encoding.TextMarshaler values use their own text.
//   - Maps, slices, arrays and structs are serialized to compact JSON.
//     A value containing itself becomes CircularText; any other value the
//     encoder rejects becomes its type name in brackets, e.g. "[chan int]".
//   - Numbers and booleans use a JavaScript-compatible representation.
//
// # Null and Undefined
//
// Go has a single nil, so the second absence state is modelled by the
// Undefined sentinel:
//
//	coerce.AsString(nil)              // ""
//	coerce.AsString(coerce.Undefined) // ""
//
// Both coerce to the empty string, but the format package treats them
// differently when substituting placeholders.
//
// # Errors
//
// Use WithStack to attach the current call stack to an error:
//
//	err := coerce.WithStack(errors.New("boom"))
//	fmt.Println(coerce.AsString(err))
//	// ERROR [errorString]: boom
//	//
//	//     at main.main (/src/main.go:12)
package coerce
