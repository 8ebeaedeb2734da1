package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/mkloubert/js-strings/builder"
	"github.com/mkloubert/js-strings/format"
	"github.com/mkloubert/js-strings/transform"
)

// EnvPrefix prefixes every environment variable read by LoadFromEnv.
const EnvPrefix = "JSSTRINGS_"

// Named line terminators accepted by Newline.
const (
	NewlineLF   = "lf"
	NewlineCRLF = "crlf"
	NewlineCR   = "cr"
)

// Config holds toolkit settings.
type Config struct {
	// Newline is the line terminator for builders: "lf", "crlf", "cr" or a
	// literal string. Empty means builder.DefaultNewline.
	Newline string `json:"newline,omitempty" yaml:"newline,omitempty" toml:"newline,omitempty" jsonschema:"title=Line terminator"`

	// Extended makes the extended transforms (json, striptags, title,
	// squash) available in templates.
	Extended bool `json:"extended,omitempty" yaml:"extended,omitempty" toml:"extended,omitempty" jsonschema:"title=Enable extended transforms"`

	// Transforms defines named chains of existing transforms. A chain may
	// reference another chain.
	Transforms map[string][]string `json:"transforms,omitempty" yaml:"transforms,omitempty" toml:"transforms,omitempty" jsonschema:"title=Named transform chains"`
}

// Default returns a Config with the standard settings.
func Default() Config {
	return Config{
		Newline: NewlineLF,
	}
}

// LoadFromEnv populates fields from environment variables.
// Environment variables take precedence over existing values; unparsable
// values are ignored.
//
// Supported variables:
//   - JSSTRINGS_NEWLINE: line terminator
//   - JSSTRINGS_EXTENDED: enable extended transforms
func (c *Config) LoadFromEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "NEWLINE"); ok {
		c.Newline = v
	}
	if v := os.Getenv(EnvPrefix + "EXTENDED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Extended = b
		}
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := Default()
	cfg.LoadFromEnv()
	return cfg
}

// NewlineText returns the literal line terminator selected by Newline.
func (c Config) NewlineText() string {
	switch c.Newline {
	case "":
		return builder.DefaultNewline
	case NewlineLF:
		return "\n"
	case NewlineCRLF:
		return "\r\n"
	case NewlineCR:
		return "\r"
	}
	return c.Newline
}

// Validate checks that every transform chain can be built.
func (c Config) Validate() error {
	_, err := c.Registry()
	return err
}

// Registry builds a transform registry holding the built-in transforms, the
// extended ones if enabled, and the configured chains.
func (c Config) Registry() (*transform.Registry, error) {
	r := transform.NewRegistry()
	if c.Extended {
		r = transform.Extended()
	}

	// Chains may refer to each other, so register in passes until no
	// further chain resolves.
	pending := slices.Sorted(maps.Keys(c.Transforms))
	for len(pending) > 0 {
		var next []string
		for _, name := range pending {
			if !r.Has(name) && !resolvable(r, c.Transforms[name]) {
				next = append(next, name)
				continue
			}
			if err := r.Alias(name, c.Transforms[name]...); err != nil {
				return nil, fmt.Errorf("%w: transform %q: %w", ErrInvalid, name, err)
			}
		}
		if len(next) == len(pending) {
			name := next[0]
			_, err := r.Resolve(c.Transforms[name])
			return nil, fmt.Errorf("%w: transform %q: %w", ErrInvalid, name, err)
		}
		pending = next
	}

	return r, nil
}

func resolvable(r *transform.Registry, chain []string) bool {
	_, err := r.Resolve(chain)
	return err == nil
}

// Formatter returns a formatter using the configured registry.
func (c Config) Formatter() (*format.Formatter, error) {
	r, err := c.Registry()
	if err != nil {
		return nil, err
	}
	return format.New(format.WithRegistry(r)), nil
}

// NewBuilder returns a builder using the configured newline and formatter.
func (c Config) NewBuilder(initial any) (*builder.StringBuilder, error) {
	f, err := c.Formatter()
	if err != nil {
		return nil, err
	}
	return builder.New(initial,
		builder.WithNewline(c.NewlineText()),
		builder.WithFormatter(f),
	), nil
}

// WithNewline returns a copy of the config with the specified newline.
func (c Config) WithNewline(newline string) Config {
	c.Newline = newline
	return c
}

// WithExtended returns a copy of the config with extended transforms
// enabled or disabled.
func (c Config) WithExtended(enabled bool) Config {
	c.Extended = enabled
	return c
}

// WithTransform returns a copy of the config defining name as chain.
func (c Config) WithTransform(name string, chain ...string) Config {
	transforms := make(map[string][]string, len(c.Transforms)+1)
	maps.Copy(transforms, c.Transforms)
	transforms[name] = slices.Clone(chain)
	c.Transforms = transforms
	return c
}
