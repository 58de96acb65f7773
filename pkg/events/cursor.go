package events

import "iter"

// Cursor tracks one reader's progress through a feed. The zero value is a
// valid cursor positioned before the first event ever sent.
//
// A cursor is exclusively owned by its reader and is mutated only by that
// reader's Read, ReadWithID, and Clear calls. It only moves forward, and only
// as far as events the reader actually consumed: breaking out of a Read loop
// leaves the cursor at the last event the loop body saw.
type Cursor[T any] struct {
	next ID
}

// Read iterates over events the cursor has not seen yet, oldest first, across
// both retained generations. The cursor advances with each event delivered to
// the loop body; events expired past the two-generation window are skipped.
func (c *Cursor[T]) Read(f *Feed[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if f == nil {
			return
		}
		for _, gen := range [2][]instance[T]{f.front, f.back} {
			for _, in := range gen {
				if in.id < c.next {
					continue
				}
				c.next = in.id + 1
				if !yield(in.event) {
					return
				}
			}
		}
	}
}

// ReadWithID is Read with each event paired with its ID, for readers that
// need positional identity (e.g. de-duplicating across multiple reads).
func (c *Cursor[T]) ReadWithID(f *Feed[T]) iter.Seq2[T, ID] {
	return func(yield func(T, ID) bool) {
		if f == nil {
			return
		}
		for _, gen := range [2][]instance[T]{f.front, f.back} {
			for _, in := range gen {
				if in.id < c.next {
					continue
				}
				c.next = in.id + 1
				if !yield(in.event, in.id) {
					return
				}
			}
		}
	}
}

// Len returns the number of unread retained events without consuming them.
func (c *Cursor[T]) Len(f *Feed[T]) int {
	if f == nil {
		return 0
	}
	start := max(c.next, f.Oldest())
	if start >= f.next {
		return 0
	}
	return int(f.next - start)
}

// IsEmpty reports whether the cursor has no unread events.
func (c *Cursor[T]) IsEmpty(f *Feed[T]) bool {
	return c.Len(f) == 0
}

// Clear advances the cursor past every retained event without producing them.
// Other cursors on the same feed are unaffected.
func (c *Cursor[T]) Clear(f *Feed[T]) {
	if f == nil {
		return
	}
	c.next = f.next
}

// Missed returns the number of events that expired out of the feed before
// this cursor consumed them.
func (c *Cursor[T]) Missed(f *Feed[T]) int {
	if f == nil {
		return 0
	}
	if oldest := f.Oldest(); c.next < oldest {
		return int(oldest - c.next)
	}
	return 0
}
