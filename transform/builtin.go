package transform

import (
	"encoding/json"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"

	"github.com/mkloubert/js-strings/coerce"
)

// Built-in transform names.
const (
	Lower = "lower"
	Upper = "upper"
	Trim  = "trim"
	LTrim = "ltrim"
	RTrim = "rtrim"
)

// Extended transform names.
const (
	JSON      = "json"
	StripTags = "striptags"
	Title     = "title"
	Squash    = "squash"
)

// Text lifts a string function into a transform that coerces its input first.
func Text(fn func(string) string) Func {
	return func(v any) string {
		return fn(coerce.AsString(v))
	}
}

func builtins() map[string]Func {
	return map[string]Func{
		Lower: Text(strings.ToLower),
		Upper: Text(strings.ToUpper),
		Trim:  Text(strings.TrimSpace),
		LTrim: Text(func(s string) string { return strings.TrimLeftFunc(s, unicode.IsSpace) }),
		RTrim: Text(func(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }),
	}
}

func extended() map[string]Func {
	return map[string]Func{
		JSON:      Text(quoteJSON),
		StripTags: Text(stripTags),
		Title:     Text(title),
		Squash:    Text(func(s string) string { return strings.Join(strings.Fields(s), " ") }),
	}
}

// quoteJSON returns s as a JSON string literal.
func quoteJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return s
	}
	return string(b)
}

var (
	strictPolicy     *bluemonday.Policy
	strictPolicyOnce sync.Once
)

// stripTags removes all markup, leaving text content. Entities produced by
// the sanitizer are kept escaped.
func stripTags(s string) string {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy.Sanitize(s)
}

// title uppercases the first letter of every whitespace separated word.
func title(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	start := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			start = true
		case start:
			r = unicode.ToUpper(r)
			start = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
