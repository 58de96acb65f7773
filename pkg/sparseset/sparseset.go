package sparseset

import "iter"

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Set is a sparse associative container. Lookups go through a map index while
// values live in a dense slice that preserves insertion order.
type Set[K comparable, V any] struct {
	index map[K]int
	dense []entry[K, V]
}

// New creates an empty set.
func New[K comparable, V any]() *Set[K, V] {
	return &Set[K, V]{
		index: make(map[K]int),
	}
}

// Set inserts or replaces the value for key.
func (s *Set[K, V]) Set(key K, value V) {
	if i, ok := s.index[key]; ok {
		s.dense[i].value = value
		return
	}
	s.index[key] = len(s.dense)
	s.dense = append(s.dense, entry[K, V]{key: key, value: value})
}

// Get returns the value for key.
// Returns the zero value and false if the key is absent.
func (s *Set[K, V]) Get(key K) (V, bool) {
	if i, ok := s.index[key]; ok {
		return s.dense[i].value, true
	}
	var zero V
	return zero, false
}

// GetOrInsertWith returns the value for key, calling factory to create and
// insert one if the key is absent. The factory is not called for present keys.
func (s *Set[K, V]) GetOrInsertWith(key K, factory func() V) V {
	if i, ok := s.index[key]; ok {
		return s.dense[i].value
	}
	value := factory()
	s.index[key] = len(s.dense)
	s.dense = append(s.dense, entry[K, V]{key: key, value: value})
	return value
}

// Contains reports whether key is present.
func (s *Set[K, V]) Contains(key K) bool {
	_, ok := s.index[key]
	return ok
}

// Len returns the number of entries.
func (s *Set[K, V]) Len() int {
	return len(s.dense)
}

// Keys returns all keys in insertion order.
func (s *Set[K, V]) Keys() []K {
	keys := make([]K, len(s.dense))
	for i := range s.dense {
		keys[i] = s.dense[i].key
	}
	return keys
}

// All iterates over (key, value) pairs in insertion order.
func (s *Set[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range s.dense {
			if !yield(s.dense[i].key, s.dense[i].value) {
				return
			}
		}
	}
}
