// Package config loads toolkit settings from files and the environment.
//
// A configuration selects the line terminator used by builders, whether the
// extended transforms are available, and named transform chains:
//
//	newline: crlf
//	extended: true
//	transforms:
//	  shout: [trim, upper]
//	  slug: [squash, lower]
//
// The same settings can be written as TOML or JSON. Load picks the decoder
// from the file extension (.yaml, .yml, .toml, .json). Unknown keys are
// rejected.
//
// # Environment
//
// LoadFromEnv overrides fields from JSSTRINGS_ variables:
//
//   - JSSTRINGS_NEWLINE: lf, crlf, cr or a literal terminator
//   - JSSTRINGS_EXTENDED: enable extended transforms (true/false)
//
// # Using a Config
//
//	cfg, err := config.Load("jsstrings.yaml")
//	f, err := cfg.Formatter()
//	s, err := f.Format("{0:shout}", " hi ")
//
// # Watching
//
// Watcher delivers a new Config whenever the file changes, using fsnotify
// with a polling fallback:
//
//	for cfg := range config.NewWatcher(path).Watch(ctx) {
//		...
//	}
//
// # Schema
//
// Schema returns the JSON schema of the configuration file.
package config
