package removal

import (
	"iter"

	"github.com/dmitrymomot/entitykit/pkg/component"
	"github.com/dmitrymomot/entitykit/pkg/entity"
	"github.com/dmitrymomot/entitykit/pkg/events"
)

// Reader is a removal cursor tagged with the component type it follows. The
// tag exists purely at compile time: it prevents a reader from being handed
// to a view of a different component type. The zero value is a valid reader
// positioned before the first notification.
//
// A Reader belongs to one consumer and persists across that consumer's
// invocations, so each invocation picks up where the previous one stopped.
type Reader[T any] struct {
	cursor events.Cursor[RemovedEntity]
}

// Cursor exposes the underlying feed cursor.
func (r *Reader[T]) Cursor() *events.Cursor[RemovedEntity] {
	return &r.cursor
}

// RemovedComponents is the consumer-facing view over removal notifications
// for one component type T. It pairs the type's resolved ID and the
// consumer's persistent Reader with shared read access to the Registry, and
// mutates nothing but its own reader's cursor.
//
// The view tolerates the type's feed not existing yet; every operation treats
// an absent feed as an empty one.
type RemovedComponents[T any] struct {
	id     component.ID
	reader *Reader[T]
	feeds  *Registry
}

// For builds the view for component type T, resolving (and registering, if
// needed) the type's ID in the store's component registry. The reader must be
// the consumer's own persistent Reader[T]; feeds is the store's shared
// removal registry.
func For[T any](types *component.Registry, reader *Reader[T], feeds *Registry) RemovedComponents[T] {
	return RemovedComponents[T]{
		id:     component.Register[T](types),
		reader: reader,
		feeds:  feeds,
	}
}

// ComponentID returns the resolved ID of T.
func (rc RemovedComponents[T]) ComponentID() component.ID {
	return rc.id
}

// Events returns the underlying feed for T, or false if no removal of T has
// ever been recorded.
func (rc RemovedComponents[T]) Events() (*events.Feed[RemovedEntity], bool) {
	return rc.feeds.Get(rc.id)
}

// Cursor exposes the view's reader cursor.
func (rc RemovedComponents[T]) Cursor() *events.Cursor[RemovedEntity] {
	return rc.reader.Cursor()
}

// Read iterates over entities that lost a T since this reader last consumed,
// oldest first. The cursor advances with each entity delivered to the loop
// body; breaking early keeps the rest unread for the next call.
func (rc RemovedComponents[T]) Read() iter.Seq[entity.Entity] {
	return func(yield func(entity.Entity) bool) {
		feed, ok := rc.Events()
		if !ok {
			return
		}
		for ev := range rc.reader.cursor.Read(feed) {
			if !yield(ev.Entity()) {
				return
			}
		}
	}
}

// ReadWithID is Read with each entity paired with its notification ID, for
// consumers that need positional identity across reads.
func (rc RemovedComponents[T]) ReadWithID() iter.Seq2[entity.Entity, events.ID] {
	return func(yield func(entity.Entity, events.ID) bool) {
		feed, ok := rc.Events()
		if !ok {
			return
		}
		for ev, id := range rc.reader.cursor.ReadWithID(feed) {
			if !yield(ev.Entity(), id) {
				return
			}
		}
	}
}

// Len returns the number of unread notifications without consuming any.
func (rc RemovedComponents[T]) Len() int {
	feed, ok := rc.Events()
	if !ok {
		return 0
	}
	return rc.reader.cursor.Len(feed)
}

// IsEmpty reports whether there is nothing unread.
func (rc RemovedComponents[T]) IsEmpty() bool {
	return rc.Len() == 0
}

// Clear consumes all unread notifications without producing entities. Only
// this view's reader is affected; other readers keep their positions.
func (rc RemovedComponents[T]) Clear() {
	if feed, ok := rc.Events(); ok {
		rc.reader.cursor.Clear(feed)
	}
}
