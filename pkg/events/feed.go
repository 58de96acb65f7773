package events

import "iter"

// ID identifies one event within a single feed. IDs increase monotonically
// with each Send and are never reused.
type ID uint64

type instance[T any] struct {
	id    ID
	event T
}

// Feed is a doubly-buffered event queue. It retains the current and the
// immediately previous generation; older events are gone.
type Feed[T any] struct {
	front []instance[T] // previous generation, oldest retained events
	back  []instance[T] // current generation, Send appends here
	next  ID            // id the next Send will assign
}

// NewFeed creates an empty feed.
func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{}
}

// Send appends an event to the current generation and returns its ID.
// Events are immutable once written.
func (f *Feed[T]) Send(event T) ID {
	id := f.next
	f.next++
	f.back = append(f.back, instance[T]{id: id, event: event})
	return id
}

// Update rotates generations: the previous generation is dropped, the current
// generation becomes previous, and a fresh current generation is opened.
// Call exactly once per tick. Requires exclusive access to the feed.
func (f *Feed[T]) Update() {
	f.front = f.back
	f.back = nil
}

// Len returns the number of retained events across both generations.
func (f *Feed[T]) Len() int {
	return len(f.front) + len(f.back)
}

// IsEmpty reports whether the feed retains no events.
func (f *Feed[T]) IsEmpty() bool {
	return f.Len() == 0
}

// Oldest returns the ID of the oldest retained event. When the feed retains
// nothing it equals NextID.
func (f *Feed[T]) Oldest() ID {
	if len(f.front) > 0 {
		return f.front[0].id
	}
	if len(f.back) > 0 {
		return f.back[0].id
	}
	return f.next
}

// NextID returns the ID the next Send will assign.
func (f *Feed[T]) NextID() ID {
	return f.next
}

// Get returns the retained event with the given ID.
func (f *Feed[T]) Get(id ID) (T, bool) {
	for _, gen := range [2][]instance[T]{f.front, f.back} {
		if len(gen) == 0 || id < gen[0].id {
			continue
		}
		if i := int(id - gen[0].id); i < len(gen) {
			return gen[i].event, true
		}
	}
	var zero T
	return zero, false
}

// All iterates over every retained event with its ID, oldest first. It does
// not affect any cursor.
func (f *Feed[T]) All() iter.Seq2[ID, T] {
	return func(yield func(ID, T) bool) {
		for _, gen := range [2][]instance[T]{f.front, f.back} {
			for _, in := range gen {
				if !yield(in.id, in.event) {
					return
				}
			}
		}
	}
}

// Drain consumes every retained event, yielding each with its ID, oldest
// first across both generations. The feed is emptied the moment Drain is
// called; the returned sequence iterates over what was drained, so breaking
// early discards the rest. IDs keep counting from where they were.
func (f *Feed[T]) Drain() iter.Seq2[ID, T] {
	front, back := f.front, f.back
	f.front = nil
	f.back = nil
	return func(yield func(ID, T) bool) {
		for _, gen := range [2][]instance[T]{front, back} {
			for _, in := range gen {
				if !yield(in.id, in.event) {
					return
				}
			}
		}
	}
}

// Clear drops all retained events without rotating generations. IDs keep
// counting from where they were.
func (f *Feed[T]) Clear() {
	f.front = nil
	f.back = nil
}
