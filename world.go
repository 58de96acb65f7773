package entitykit

import (
	"log/slog"

	"github.com/dmitrymomot/entitykit/pkg/component"
	"github.com/dmitrymomot/entitykit/pkg/entity"
	"github.com/dmitrymomot/entitykit/pkg/removal"
	"github.com/dmitrymomot/entitykit/pkg/sparseset"
)

// column stores one component type's values, keyed by owning entity.
type column map[entity.Entity]any

// World is an entity-component store. It owns entity identity, one column per
// component type, and the removal notification registry fed by its mutation
// paths.
//
// A World is not safe for unsequenced concurrent mutation. Mutations (Spawn,
// Despawn, Insert, Remove) and the once-per-tick ClearTrackers need exclusive
// access; systems reading removal notifications may run in parallel between
// mutations since each mutates only its own reader cursor.
type World struct {
	entities *entity.Allocator
	types    *component.Registry
	columns  *sparseset.Set[component.ID, column]
	removed  *removal.Registry
	systems  []*SystemState
	logger   *slog.Logger
	tick     uint64
}

// New creates an empty world.
func New(opts ...Option) *World {
	w := &World{
		entities: entity.NewAllocator(),
		types:    component.NewRegistry(),
		columns:  sparseset.New[component.ID, column](),
		removed:  removal.NewRegistry(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Components returns the world's component type registry.
func (w *World) Components() *component.Registry {
	return w.types
}

// RemovedEvents returns the world's removal notification registry. The
// returned registry is shared; treat it as read-only and go through the
// world's mutation paths to produce notifications.
func (w *World) RemovedEvents() *removal.Registry {
	return w.removed
}

// Spawn creates a new entity with no components.
func (w *World) Spawn() entity.Entity {
	return w.entities.Alloc()
}

// Despawn destroys the entity, firing one removal notification for every
// component it still carried. Returns false if the entity was already dead.
func (w *World) Despawn(e entity.Entity) bool {
	if !w.entities.Alive(e) {
		return false
	}
	for id, col := range w.columns.All() {
		if _, ok := col[e]; ok {
			delete(col, e)
			w.removed.Send(id, e)
		}
	}
	return w.entities.Free(e)
}

// Alive reports whether the entity handle refers to a live entity.
func (w *World) Alive(e entity.Entity) bool {
	return w.entities.Alive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.Count()
}

// ClearTrackers rotates the removal notification buffers. The tick driver
// (RunTick) calls it exactly once per tick; call it manually only when
// driving the world without RunTick, and then exactly once per logical tick.
func (w *World) ClearTrackers() {
	w.removed.Update()
}

// Insert attaches a component value to the entity, replacing any previous
// value of the same type. Returns false if the entity is dead.
func Insert[T any](w *World, e entity.Entity, value T) bool {
	if !w.entities.Alive(e) {
		return false
	}
	id := component.Register[T](w.types)
	col := w.columns.GetOrInsertWith(id, func() column { return column{} })
	col[e] = value
	return true
}

// Remove detaches the entity's component of type T, firing a removal
// notification. Returns false if the entity did not carry one.
func Remove[T any](w *World, e entity.Entity) bool {
	id, ok := component.IDOf[T](w.types)
	if !ok {
		return false
	}
	col, ok := w.columns.Get(id)
	if !ok {
		return false
	}
	if _, ok := col[e]; !ok {
		return false
	}
	delete(col, e)
	w.removed.Send(id, e)
	return true
}

// Get returns the entity's component of type T.
func Get[T any](w *World, e entity.Entity) (T, bool) {
	var zero T
	id, ok := component.IDOf[T](w.types)
	if !ok {
		return zero, false
	}
	col, ok := w.columns.Get(id)
	if !ok {
		return zero, false
	}
	v, ok := col[e]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Has reports whether the entity carries a component of type T.
func Has[T any](w *World, e entity.Entity) bool {
	_, ok := Get[T](w, e)
	return ok
}
