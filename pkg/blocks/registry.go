package blocks

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores block types by name.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]Type),
	}
}

// Register validates and stores t. Names are unique.
func (r *Registry) Register(t Type) error {
	if r == nil {
		return ErrNotRegistered
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("blocks: register %q: %w", t.Name, err)
	}
	key := NormalizeName(t.Name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[key]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, t.Name)
	}
	r.types[key] = t
	return nil
}

// Get returns the type registered under name.
func (r *Registry) Get(name string) (Type, error) {
	if r == nil {
		return Type{}, ErrNotRegistered
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[NormalizeName(name)]
	if !ok {
		return Type{}, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return t, nil
}

// Unregister removes name, returning whether it was present.
func (r *Registry) Unregister(name string) bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := NormalizeName(name)
	if _, ok := r.types[key]; !ok {
		return false
	}
	delete(r.types, key)
	return true
}

// List returns registered types sorted by name.
func (r *Registry) List() []Type {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	out := make([]Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// NormalizeName lower cases name and adds the implicit core namespace used
// by the delimiter grammar.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name != "" && !strings.Contains(name, "/") {
		name = "core/" + name
	}
	return name
}
