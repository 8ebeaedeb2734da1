package coerce

import (
	"encoding"
	"fmt"
	"reflect"
)

//go:generate stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies a value for coercion.
type Kind int

const (
	KindOther Kind = iota
	KindText
	KindNumber
	KindBoolean
	KindNull
	KindUndefined
	KindError
	KindStringer
	KindObject
)

// IsAbsent reports whether k is one of the two absence kinds.
func (k Kind) IsAbsent() bool {
	return k == KindNull || k == KindUndefined
}

// KindOf returns the coercion kind of v.
//
// Non-nil pointers are followed until a value with its own text conversion
// or a non-pointer value is reached, so KindOf(&n) equals KindOf(n).
func KindOf(v any) Kind {
	return kindOf(indirect(v))
}

func kindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case undefined:
		return KindUndefined
	case string, []byte, []rune:
		return KindText
	case error:
		if isNilValue(v) {
			return KindNull
		}
		return KindError
	case fmt.Stringer, encoding.TextMarshaler:
		if isNilValue(v) {
			return KindNull
		}
		return KindStringer
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return KindText
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return KindNull
		}
		return KindObject
	case reflect.Array, reflect.Struct:
		return KindObject
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return KindNull
		}
	}
	return KindOther
}

// maxIndirections bounds pointer chains so self-referential pointer types
// terminate.
const maxIndirections = 64

// indirect follows non-nil pointers that carry no text conversion of their own.
func indirect(v any) any {
	for range maxIndirections {
		switch v.(type) {
		case nil, undefined, string, []byte, []rune, error, fmt.Stringer, encoding.TextMarshaler:
			return v
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return v
		}
		v = rv.Elem().Interface()
	}
	return v
}

// isNilValue reports whether v holds a typed nil.
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
