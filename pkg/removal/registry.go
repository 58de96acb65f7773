package removal

import (
	"iter"

	"github.com/dmitrymomot/entitykit/pkg/component"
	"github.com/dmitrymomot/entitykit/pkg/entity"
	"github.com/dmitrymomot/entitykit/pkg/events"
	"github.com/dmitrymomot/entitykit/pkg/sparseset"
)

// RemovedEntity is the notification payload: the entity that lost a
// component. It is immutable and cheap to copy.
type RemovedEntity struct {
	entity entity.Entity
}

// Entity returns the entity that lost the component.
func (r RemovedEntity) Entity() entity.Entity {
	return r.entity
}

func (r RemovedEntity) String() string {
	return r.entity.String()
}

// Registry stores the removal notification feeds for every component type in
// a store. Feeds are created lazily on first Send and live for the registry's
// lifetime; the key set never shrinks.
//
// Send and Update each require exclusive access to the registry. Readers
// holding distinct cursors may read concurrently between mutations.
type Registry struct {
	feeds *sparseset.Set[component.ID, *events.Feed[RemovedEntity]]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		feeds: sparseset.New[component.ID, *events.Feed[RemovedEntity]](),
	}
}

// Send records that entity no longer carries the component type identified by
// id, creating the type's feed if this is the first removal ever seen for it.
// It always succeeds and returns the notification's feed-local ID.
func (r *Registry) Send(id component.ID, e entity.Entity) events.ID {
	feed := r.feeds.GetOrInsertWith(id, events.NewFeed[RemovedEntity])
	return feed.Send(RemovedEntity{entity: e})
}

// Get returns the feed for the component type, or false if nothing of that
// type has ever been removed.
func (r *Registry) Get(id component.ID) (*events.Feed[RemovedEntity], bool) {
	return r.feeds.Get(id)
}

// Update rotates every feed's generations, dropping notifications older than
// two ticks. Call exactly once per tick: skipping it lets the current
// generation grow without bound, and calling it twice expires notifications
// one generation early, losing them for readers that have not caught up yet.
func (r *Registry) Update() {
	for _, feed := range r.feeds.All() {
		feed.Update()
	}
}

// All iterates over (component ID, feed) pairs for diagnostics. Iteration
// order is the order in which types first saw a removal.
func (r *Registry) All() iter.Seq2[component.ID, *events.Feed[RemovedEntity]] {
	return r.feeds.All()
}

// Len returns the number of component types that have ever seen a removal.
func (r *Registry) Len() int {
	return r.feeds.Len()
}
