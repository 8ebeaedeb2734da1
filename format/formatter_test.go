package format_test

import (
	"errors"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkloubert/js-strings/coerce"
	"github.com/mkloubert/js-strings/format"
	"github.com/mkloubert/js-strings/transform"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		args []any
		want string
	}{
		{
			name: "swapped order",
			tmpl: "{1}, {0}",
			args: []any{"Marcel", "Kloubert"},
			want: "Kloubert, Marcel",
		},
		{
			name: "transform chains",
			tmpl: "{1:lower,trim}, {0:upper}",
			args: []any{"Marcel", "  kloubert  "},
			want: "kloubert, MARCEL",
		},
		{
			name: "null substituted, undefined kept",
			tmpl: "{1}, {0} Joachim",
			args: []any{nil, coerce.Undefined},
			want: "{1},  Joachim",
		},
		{
			name: "out of range kept",
			tmpl: "{0} and {3}",
			args: []any{"a"},
			want: "a and {3}",
		},
		{
			name: "no arguments",
			tmpl: "Hello {0}!",
			want: "Hello {0}!",
		},
		{
			name: "no placeholders",
			tmpl: "plain text",
			args: []any{"unused"},
			want: "plain text",
		},
		{
			name: "repeated index",
			tmpl: "{0}{0}{0:upper}",
			args: []any{"ab"},
			want: "ababAB",
		},
		{
			name: "non-text values",
			tmpl: "{0} {1} {2} {3}",
			args: []any{42, true, 1.5, []int{1, 2}},
			want: "42 true 1.5 [1,2]",
		},
		{
			name: "transform on out of range substitutes empty",
			tmpl: "[{2:upper}]",
			args: []any{"a"},
			want: "[]",
		},
		{
			name: "transform on undefined substitutes empty",
			tmpl: "[{0:trim}]",
			args: []any{coerce.Undefined},
			want: "[]",
		},
		{
			name: "empty transform list keeps undefined",
			tmpl: "[{1:}] [{0:}]",
			args: []any{"x"},
			want: "[{1:}] [x]",
		},
		{
			name: "names are trimmed and empties dropped",
			tmpl: "{0: upper , ,trim }",
			args: []any{"  mixed Case  "},
			want: "MIXED CASE",
		},
		{
			name: "leading zeros",
			tmpl: "{001}",
			args: []any{"a", "b"},
			want: "b",
		},
		{
			name: "index overflow kept",
			tmpl: "{99999999999999999999}",
			args: []any{"a"},
			want: "{99999999999999999999}",
		},
		{
			name: "unicode around placeholders",
			tmpl: "héllo {0} wörld",
			args: []any{"ß"},
			want: "héllo ß wörld",
		},
		{
			name: "nested braces",
			tmpl: "{{0}}",
			args: []any{"A"},
			want: "{A}",
		},
		{
			name: "error argument",
			tmpl: "{0}",
			args: []any{errors.New("boom")},
			want: "ERROR [errorString]: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := format.Format(tt.tmpl, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_MalformedPlaceholdersPassThrough(t *testing.T) {
	for _, tmpl := range []string{
		"{x}", "{ 1}", "{1 }", "{1", "{1:upper", "{}", "{1a}", "}0{", "{-1}", "{", "}",
	} {
		t.Run(tmpl, func(t *testing.T) {
			got, err := format.Format(tmpl, "a", "b")
			require.NoError(t, err)
			assert.Equal(t, tmpl, got)
		})
	}
}

func TestFormat_UnknownTransform(t *testing.T) {
	got, err := format.Format("ok {0} then {0:upper,shout}", "x")

	require.Error(t, err)
	assert.Empty(t, got)
	assert.ErrorIs(t, err, transform.ErrUnknown)
	assert.ErrorIs(t, err, format.ErrUnknownTransform)

	var fe *format.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "{0:upper,shout}", fe.Placeholder)
	assert.Equal(t, 12, fe.Offset)
	assert.Contains(t, err.Error(), "shout")
}

func TestFormat_UnknownTransformFailsEvenWhenOutOfRange(t *testing.T) {
	_, err := format.Format("{7:nope}")
	assert.ErrorIs(t, err, transform.ErrUnknown)
}

func TestFormat_TransformNamesAreCaseSensitive(t *testing.T) {
	_, err := format.Format("{0:UPPER}", "x")
	assert.ErrorIs(t, err, transform.ErrUnknown)
}

func TestFormatter_WithRegistry(t *testing.T) {
	r := transform.Extended()
	require.NoError(t, r.Alias("shout", "trim", "upper"))
	f := format.New(format.WithRegistry(r))

	got, err := f.Format("{0:shout}! {1:json}", "  hey ", `a"b`)
	require.NoError(t, err)
	assert.Equal(t, `HEY! "a\"b"`, got)
	assert.Same(t, r, f.Registry())

	_, err = format.Format("{0:shout}", "x")
	assert.ErrorIs(t, err, transform.ErrUnknown, "default registry must not see the alias")
}

func TestFormatter_WithNilRegistryKeepsDefault(t *testing.T) {
	f := format.New(format.WithRegistry(nil))
	assert.Same(t, transform.Default(), f.Registry())
}

func TestFormatArray_Iterables(t *testing.T) {
	const tmpl = "{2}-{1}-{0}"
	const want = "c-b-a"

	ch := make(chan string, 3)
	ch <- "a"
	ch <- "b"
	ch <- "c"
	close(ch)

	var seqAny iter.Seq[any] = func(yield func(any) bool) {
		for _, s := range []string{"a", "b", "c"} {
			if !yield(s) {
				return
			}
		}
	}

	tests := []struct {
		name string
		args any
	}{
		{name: "any slice", args: []any{"a", "b", "c"}},
		{name: "string slice", args: []string{"a", "b", "c"}},
		{name: "array", args: [3]string{"a", "b", "c"}},
		{name: "typed seq", args: slices.Values([]string{"a", "b", "c"})},
		{name: "any seq", args: seqAny},
		{name: "channel", args: ch},
		{name: "string", args: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := format.FormatArray(tmpl, tt.args)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFormatArray_NilIsEmpty(t *testing.T) {
	got, err := format.FormatArray("{0}", nil)
	require.NoError(t, err)
	assert.Equal(t, "{0}", got)
}

func TestFormatArray_NotIterable(t *testing.T) {
	for _, args := range []any{42, map[string]int{"a": 1}, struct{}{}, func() {}} {
		_, err := format.FormatArray("{0}", args)
		assert.ErrorIs(t, err, format.ErrNotIterable)
	}
}

func TestFormatSeq(t *testing.T) {
	got, err := format.FormatSeq("{0}{1}", slices.Values([]any{"x", 1}))
	require.NoError(t, err)
	assert.Equal(t, "x1", got)

	got, err = format.FormatSeq("{0}", nil)
	require.NoError(t, err)
	assert.Equal(t, "{0}", got)
}

func TestFormatArray_MatchesFormat(t *testing.T) {
	args := []any{"Marcel", "  Kloubert ", nil, coerce.Undefined, 3}
	tmpl := "{4}: {1:trim,upper}, {0:lower} {2}{3} {9}"

	direct, err := format.Format(tmpl, args...)
	require.NoError(t, err)

	fromSlice, err := format.FormatArray(tmpl, args)
	require.NoError(t, err)

	fromSeq, err := format.FormatArray(tmpl, slices.Values(args))
	require.NoError(t, err)

	assert.Equal(t, direct, fromSlice)
	assert.Equal(t, direct, fromSeq)
	assert.Equal(t, "3: KLOUBERT, marcel {3} {9}", direct)
}

func TestMustFormat(t *testing.T) {
	assert.Equal(t, "A", format.MustFormat("{0:upper}", "a"))
	assert.Panics(t, func() { format.MustFormat("{0:missing}", "a") })
}

func TestFormatter_Validate(t *testing.T) {
	f := format.New()

	assert.NoError(t, f.Validate("{0:upper} {1} {x:missing}"))

	err := f.Validate("{0:upper} {1:missing}")
	var fe *format.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "{1:missing}", fe.Placeholder)
}

func TestFormat_LargeTemplate(t *testing.T) {
	tmpl := strings.Repeat("{0}-{1:upper};", 1000)
	got, err := format.Format(tmpl, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a-B;", 1000), got)
}

func TestFormat_CyclicArgument(t *testing.T) {
	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	got, err := format.Format("{0} / {0:upper}", cyclic)
	require.NoError(t, err)
	assert.Equal(t, coerce.CircularText+" / "+strings.ToUpper(coerce.CircularText), got)
}
