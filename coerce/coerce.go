package coerce

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// CircularText replaces structured values that contain themselves.
const CircularText = "[Circular]"

// AsString returns the textual representation of v. It never fails.
func AsString(v any) string {
	v = indirect(v)

	switch kindOf(v) {
	case KindText:
		return text(v)
	case KindNull, KindUndefined:
		return ""
	case KindError:
		return errorText(v.(error))
	case KindStringer:
		return stringerText(v)
	case KindObject:
		return objectText(v)
	case KindNumber:
		return numberText(reflect.ValueOf(v))
	case KindBoolean:
		return strconv.FormatBool(reflect.ValueOf(v).Bool())
	default:
		return fmt.Sprint(v)
	}
}

// Join coerces every value and joins the results with sep.
func Join(sep string, values ...any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = AsString(v)
	}
	return strings.Join(parts, sep)
}

func text(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case []rune:
		return string(s)
	}
	return reflect.ValueOf(v).String()
}

func stringerText(v any) string {
	switch s := v.(type) {
	case fmt.Stringer:
		return s.String()
	case encoding.TextMarshaler:
		b, err := s.MarshalText()
		if err != nil {
			return fmt.Sprintf("[%T]", v)
		}
		return string(b)
	}
	return fmt.Sprintf("[%T]", v)
}

// objectText serializes v as compact JSON. Values the encoder rejects
// become a marker naming the cycle or the type.
func objectText(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return unencodableText(v, err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// unencodableText must not walk v: fmt has no cycle detection and would
// overflow the stack on self-containing maps and slices.
func unencodableText(v any, err error) string {
	var uv *json.UnsupportedValueError
	if errors.As(err, &uv) && strings.HasPrefix(uv.Str, "encountered a cycle") {
		return CircularText
	}
	return fmt.Sprintf("[%T]", v)
}
