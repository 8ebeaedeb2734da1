package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is how often the polling fallback checks the file.
const DefaultPollInterval = time.Second

// Watcher reloads a configuration file when it changes.
type Watcher struct {
	path     string
	logger   *slog.Logger
	interval time.Duration
	polling  bool
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithLogger sets the logger used to report reloads. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) WatchOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithPollInterval sets the interval of the polling fallback.
func WithPollInterval(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithPolling disables fsnotify and always polls.
func WithPolling() WatchOption {
	return func(w *Watcher) {
		w.polling = true
	}
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, opts ...WatchOption) *Watcher {
	w := &Watcher{
		path:     path,
		logger:   slog.Default(),
		interval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Watch delivers the current configuration and then every changed one until
// ctx is done. Files that fail to load are logged and skipped; an unchanged
// configuration is not delivered twice. The channel is closed when ctx is
// done.
func (w *Watcher) Watch(ctx context.Context) <-chan Config {
	ch := make(chan Config, 1)

	go func() {
		defer close(ch)

		var last *Config
		w.reload(ctx, ch, &last)

		if w.polling {
			w.poll(ctx, ch, &last)
			return
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			w.logger.Debug("config watcher unavailable, polling", slog.Any("error", err))
			w.poll(ctx, ch, &last)
			return
		}
		defer watcher.Close()

		// Watch the directory; editors often replace the file.
		if err := watcher.Add(filepath.Dir(w.path)); err != nil {
			w.logger.Debug("config watcher unavailable, polling", slog.Any("error", err))
			w.poll(ctx, ch, &last)
			return
		}

		w.watch(ctx, ch, watcher, &last)
	}()

	return ch
}

func (w *Watcher) watch(ctx context.Context, ch chan<- Config, watcher *fsnotify.Watcher, last **Config) {
	baseName := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload(ctx, ch, last)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", slog.String("path", w.path), slog.Any("error", err))
		}
	}
}

// poll reloads the file whenever its size or modification time changes.
func (w *Watcher) poll(ctx context.Context, ch chan<- Config, last **Config) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var lastMod time.Time
	var lastSize int64
	if info, err := os.Stat(w.path); err == nil {
		lastMod, lastSize = info.ModTime(), info.Size()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(lastMod) && info.Size() == lastSize {
				continue
			}
			lastMod, lastSize = info.ModTime(), info.Size()
			w.reload(ctx, ch, last)
		}
	}
}

// reload loads the file and sends it unless it equals the last delivery.
func (w *Watcher) reload(ctx context.Context, ch chan<- Config, last **Config) {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", slog.String("path", w.path), slog.Any("error", err))
		return
	}
	if *last != nil && reflect.DeepEqual(**last, cfg) {
		return
	}

	select {
	case ch <- cfg:
		*last = &cfg
		w.logger.Debug("config reloaded", slog.String("path", w.path))
	case <-ctx.Done():
	}
}
