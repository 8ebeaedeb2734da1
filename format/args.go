package format

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Args materializes an iterable into an indexable argument list, preserving
// iteration order. nil yields an empty list.
//
// Supported: slices, arrays, iter.Seq[T] for any T, channels that can be
// received from (drained until closed) and strings (one string per rune).
// Any other value returns ErrNotIterable.
func Args(v any) ([]any, error) {
	switch a := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return slices.Clone(a), nil
	case iter.Seq[any]:
		return slices.Collect(a), nil
	case string:
		return runeArgs(a), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		result := make([]any, rv.Len())
		for i := range result {
			result[i] = rv.Index(i).Interface()
		}
		return result, nil
	case reflect.String:
		return runeArgs(rv.String()), nil
	case reflect.Func:
		if !rv.IsNil() && isSeq(rv.Type()) {
			var result []any
			for item := range rv.Seq() {
				result = append(result, item.Interface())
			}
			return result, nil
		}
	case reflect.Chan:
		if !rv.IsNil() && rv.Type().ChanDir()&reflect.RecvDir != 0 {
			var result []any
			for {
				item, ok := rv.Recv()
				if !ok {
					return result, nil
				}
				result = append(result, item.Interface())
			}
		}
	}

	return nil, fmt.Errorf("%w: %T", ErrNotIterable, v)
}

// isSeq reports whether t has the shape func(yield func(T) bool).
func isSeq(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

func runeArgs(s string) []any {
	result := make([]any, 0, len(s))
	for _, r := range s {
		result = append(result, string(r))
	}
	return result
}
