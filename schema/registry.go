package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds named schemas for the lifetime of the process and guards
// access with a RWMutex. Schemas themselves are immutable; the registry only
// protects the name index, so registered schemas may be resolved from
// concurrent loads.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry initialises an empty schema registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]*Schema),
	}
}

// Register stores the schema under its name. Registering the same name twice
// is a definition-time error.
func (r *Registry) Register(s *Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[s.Name()]; exists {
		return fmt.Errorf("%q: %w", s.Name(), ErrDuplicateSchema)
	}
	r.schemas[s.Name()] = s
	return nil
}

// Get returns the schema registered under name.
func (r *Registry) Get(name string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[name]
	return s, ok
}

// Names returns the registered schema names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
