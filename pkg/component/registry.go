package component

import (
	"reflect"
	"sync"
)

// ID identifies one component type within a single Registry. IDs are assigned
// sequentially starting at zero and never reused.
type ID uint32

// Registry maps Go types to component IDs. Each store owns one Registry;
// its key set only grows.
type Registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]ID
	types  []reflect.Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]ID),
	}
}

// Register resolves the ID for T, assigning one if the type has not been seen
// before. Safe to call repeatedly; the same type always yields the same ID.
func Register[T any](r *Registry) ID {
	t := reflect.TypeFor[T]()

	r.mu.RLock()
	id, ok := r.byType[t]
	r.mu.RUnlock()
	if ok {
		return id
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check under the write lock; another goroutine may have registered
	// the type between the two lock acquisitions.
	if id, ok := r.byType[t]; ok {
		return id
	}
	id = ID(len(r.types))
	r.byType[t] = id
	r.types = append(r.types, t)
	return id
}

// IDOf returns the ID for T if the type has been registered.
func IDOf[T any](r *Registry) (ID, bool) {
	t := reflect.TypeFor[T]()

	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byType[t]
	return id, ok
}

// TypeOf returns the Go type registered under id.
func (r *Registry) TypeOf(id ID) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(id) >= len(r.types) {
		return nil, false
	}
	return r.types[id], true
}

// Len returns the number of registered component types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}
