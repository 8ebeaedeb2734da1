package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkloubert/js-strings/transform"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_Format(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "strings",
			args: []string{"format", "{1:lower,trim}, {0:upper}", "Marcel", "  kloubert  "},
			want: "kloubert, MARCEL\n",
		},
		{
			name: "json null and undefined",
			args: []string{"format", "-json", "{1}, {0} Joachim", "null", "undefined"},
			want: "{1},  Joachim\n",
		},
		{
			name: "json values",
			args: []string{"format", "-json", "{0} {1} {2}", "42", `{"a":[1,true]}`, `"q"`},
			want: "42 {\"a\":[1,true]} q\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_FormatErrors(t *testing.T) {
	_, err := runCLI(t, "format", "{0:nope}", "x")
	assert.ErrorIs(t, err, transform.ErrUnknown)

	_, err = runCLI(t, "format", "-json", "{0}", "{broken")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "format")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Coerce(t *testing.T) {
	got, err := runCLI(t, "coerce", "-json", "[1, null, \"x\"]")
	require.NoError(t, err)
	assert.Equal(t, "[1,null,\"x\"]\n", got)

	got, err = runCLI(t, "coerce", "-json", "undefined")
	require.NoError(t, err)
	assert.Equal(t, "\n", got)

	_, err = runCLI(t, "coerce")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Build(t *testing.T) {
	got, err := runCLI(t, "build", "-init", "Bar",
		"append=Foo", "prepend=Klbert, MARCEL ", "replace=MARCEL,Tanja", "insert=2,ou")
	require.NoError(t, err)
	assert.Equal(t, "Kloubert, Tanja BarFoo\n", got)

	got, err = runCLI(t, "build", "-init", "abcdef", "remove=1,2", "setlength=2", "line=!")
	require.NoError(t, err)
	assert.Equal(t, "ad!\n", got)

	got, err = runCLI(t, "build", "-init", "x", "clear")
	require.NoError(t, err)
	assert.Equal(t, "\n", got)
}

func TestRun_BuildErrors(t *testing.T) {
	_, err := runCLI(t, "build", "insert=-1,x")
	assert.ErrorContains(t, err, "out of range")

	_, err = runCLI(t, "build", "explode")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "build", "remove=a,1")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Transforms(t *testing.T) {
	got, err := runCLI(t, "transforms")
	require.NoError(t, err)
	assert.Equal(t, "lower\nltrim\nrtrim\ntrim\nupper\n", got)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsstrings.toml")
	data := "newline = \"crlf\"\nextended = true\n\n[transforms]\nshout = [\"trim\", \"upper\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, err := runCLI(t, "-config", path, "format", "{0:shout} {1:striptags}", " hi ", "<b>x</b>")
	require.NoError(t, err)
	assert.Equal(t, "HI x\n", got)

	got, err = runCLI(t, "-config", path, "build", "line=a", "line=b")
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb\r\n", got)

	got, err = runCLI(t, "-config", path, "transforms")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(got, "\n"), "shout")
}

func TestRun_ConfigFromEnv(t *testing.T) {
	t.Setenv("JSSTRINGS_EXTENDED", "true")

	got, err := runCLI(t, "format", "{0:title}", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "Hello World\n", got)
}

func TestRun_Schema(t *testing.T) {
	got, err := runCLI(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, got, `"transforms"`)
}

func TestRun_UnknownCommand(t *testing.T) {
	_, err := runCLI(t, "explode")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCLI(t)
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_WatchRequiresConfig(t *testing.T) {
	_, err := runCLI(t, "watch", "{0}")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsstrings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transforms:\n  x: [upper]\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"-config", path, "watch", "{0:x}", "abc"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "ABC\n", stdout.String())
}
