package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// waitFor reads from ch until match returns true or the timeout elapses.
func waitFor(t *testing.T, ch <-chan Config, match func(Config) bool) Config {
	t.Helper()

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg, ok := <-ch:
			require.True(t, ok, "watch channel closed early")
			if match(cfg) {
				return cfg
			}
		case <-timeout:
			t.Fatal("timed out waiting for config")
		}
	}
}

func TestWatcher(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts []WatchOption
	}{
		{name: "fsnotify"},
		{name: "polling", opts: []WatchOption{WithPolling(), WithPollInterval(10 * time.Millisecond)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "jsstrings.yaml")
			require.NoError(t, os.WriteFile(path, []byte("newline: lf\n"), 0o644))

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			opts := append([]WatchOption{WithLogger(quietLogger())}, tc.opts...)
			w := NewWatcher(path, opts...)
			assert.Equal(t, path, w.Path())

			ch := w.Watch(ctx)
			first := waitFor(t, ch, func(Config) bool { return true })
			assert.Equal(t, "lf", first.Newline)

			require.NoError(t, os.WriteFile(path, []byte("newline: crlf\nextended: true\n"), 0o644))
			updated := waitFor(t, ch, func(c Config) bool { return c.Newline == "crlf" })
			assert.True(t, updated.Extended)

			cancel()
			for range ch {
			}
		})
	}
}

func TestWatcher_SkipsInvalidFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsstrings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"newline":"cr"}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := NewWatcher(path,
		WithLogger(quietLogger()),
		WithPolling(),
		WithPollInterval(10*time.Millisecond),
	).Watch(ctx)

	waitFor(t, ch, func(c Config) bool { return c.Newline == "cr" })

	require.NoError(t, os.WriteFile(path, []byte(`{"newline":`), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(`{"newline":"crlf","extended":true}`), 0o644))

	got := waitFor(t, ch, func(c Config) bool { return c.Newline != "cr" })
	assert.Equal(t, "crlf", got.Newline)
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	ctx, cancel := context.WithCancel(context.Background())
	ch := NewWatcher(path, WithLogger(quietLogger())).Watch(ctx)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
