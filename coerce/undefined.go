package coerce

// undefined is the type of the Undefined sentinel.
type undefined struct{}

// Undefined is the absence of a value, as opposed to nil which is an explicit
// null. It coerces to "" like nil, but placeholders resolving to Undefined are
// left untouched by the format package.
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// IsAbsent reports whether v is nil, a typed nil or Undefined.
func IsAbsent(v any) bool {
	return KindOf(v).IsAbsent()
}

// String implements fmt.Stringer.
func (undefined) String() string {
	return "undefined"
}

// MarshalJSON encodes Undefined as JSON null.
func (undefined) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
