package transform

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/mkloubert/js-strings/coerce"
)

// Func converts a value to transformed text.
type Func func(v any) string

// Registry maps transform names to functions. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	funcs    map[string]Func
	readOnly bool
}

// NewRegistry creates a registry holding the built-in transforms.
func NewRegistry() *Registry {
	return &Registry{funcs: builtins()}
}

// Extended creates a registry holding the built-in and extended transforms.
func Extended() *Registry {
	funcs := builtins()
	maps.Copy(funcs, extended())
	return &Registry{funcs: funcs}
}

var defaultRegistry = &Registry{funcs: builtins(), readOnly: true}

// Default returns the shared registry used by the package-level format
// functions. It holds the built-ins and is read-only: Register, Alias and
// Unregister return ErrReadOnly. Clone it to add transforms.
func Default() *Registry {
	return defaultRegistry
}

// ReadOnly reports whether the registry rejects changes.
func (r *Registry) ReadOnly() bool {
	return r.readOnly
}

// Register adds a transform under name.
// Returns ErrDuplicate if the name is taken, ErrInvalidName if it could
// not be referenced from a placeholder and ErrReadOnly for Default().
func (r *Registry) Register(name string, fn Func) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("%w: %q has no function", ErrInvalidName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.readOnly {
		return fmt.Errorf("%w: cannot register %s", ErrReadOnly, name)
	}
	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	r.funcs[name] = fn
	return nil
}

// MustRegister adds a transform, panicking on error.
func (r *Registry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(fmt.Sprintf("transform.MustRegister(%q): %v", name, err))
	}
}

// Alias registers name as the left-to-right composition of chain.
// Every transform in chain must already be registered.
func (r *Registry) Alias(name string, chain ...string) error {
	if len(chain) == 0 {
		return fmt.Errorf("%w: alias %q has an empty chain", ErrInvalidName, name)
	}

	funcs := make([]Func, len(chain))
	for i, link := range chain {
		fn, err := r.Lookup(link)
		if err != nil {
			return fmt.Errorf("alias %q: %w", name, err)
		}
		funcs[i] = fn
	}

	return r.Register(name, func(v any) string {
		for _, fn := range funcs {
			v = fn(v)
		}
		return coerce.AsString(v)
	})
}

// Unregister removes a transform.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.readOnly {
		return fmt.Errorf("%w: cannot unregister %s", ErrReadOnly, name)
	}
	delete(r.funcs, name)
	return nil
}

// Lookup returns the transform registered under name.
func (r *Registry) Lookup(name string) (Func, error) {
	r.mu.RLock()
	fn, ok := r.funcs[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return fn, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.funcs[name]
	return ok
}

// Names returns the registered names, sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.funcs))
}

// Apply runs the named transforms over v in order. With no names, v is
// coerced as is. All names are resolved before any transform runs.
func (r *Registry) Apply(v any, names ...string) (string, error) {
	funcs, err := r.Resolve(names)
	if err != nil {
		return "", err
	}
	for _, fn := range funcs {
		v = fn(v)
	}
	return coerce.AsString(v), nil
}

// Resolve looks up every name, failing on the first unknown one.
func (r *Registry) Resolve(names []string) ([]Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	funcs := make([]Func, len(names))
	for i, name := range names {
		fn, ok := r.funcs[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
		}
		funcs[i] = fn
	}
	return funcs, nil
}

// Clone returns an independent, writable copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &Registry{funcs: maps.Clone(r.funcs)}
}

// ValidateName checks that name can be referenced from a placeholder: it must
// be non-empty, have no surrounding whitespace and contain neither ',' nor '}'.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidName, name)
	case strings.ContainsAny(name, ",}"):
		return fmt.Errorf("%w: %q contains ',' or '}'", ErrInvalidName, name)
	}
	return nil
}
