package entitykit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/entitykit/pkg/component"
	"github.com/dmitrymomot/entitykit/pkg/removal"
)

// SystemID identifies one registered system instance.
type SystemID uuid.UUID

func (id SystemID) String() string {
	return uuid.UUID(id).String()
}

// SystemFunc is the body of a system. It receives the system's persistent
// state, which is the handle for parameter injection such as Removed.
type SystemFunc func(ctx context.Context, s *SystemState) error

// SystemState is the per-system instance state the scheduler hands back on
// every invocation. It owns the system's private reader slots, keyed by
// component type, so readers persist across ticks and die with the system's
// registration.
type SystemState struct {
	id      SystemID
	name    string
	world   *World
	fn      SystemFunc
	readers map[component.ID]any
}

// ID returns the system's registration identity.
func (s *SystemState) ID() SystemID {
	return s.id
}

// Name returns the name the system was registered under.
func (s *SystemState) Name() string {
	return s.name
}

// World returns the world the system runs against.
func (s *SystemState) World() *World {
	return s.world
}

// AddSystem registers a system to run on every tick, in registration order.
func (w *World) AddSystem(name string, fn SystemFunc) SystemID {
	s := &SystemState{
		id:      SystemID(uuid.New()),
		name:    name,
		world:   w,
		fn:      fn,
		readers: make(map[component.ID]any),
	}
	w.systems = append(w.systems, s)
	return s.id
}

// RunTick runs every registered system once, in registration order, then
// rotates the removal notification buffers exactly once. A failing system
// does not stop the tick; all errors are joined and returned after the
// rotation.
func (w *World) RunTick(ctx context.Context) error {
	w.tick++
	w.logger.DebugContext(ctx, "tick started",
		slog.Uint64("tick", w.tick),
		slog.Int("systems", len(w.systems)),
	)

	var errs []error
	for _, s := range w.systems {
		if err := s.fn(ctx, s); err != nil {
			w.logger.ErrorContext(ctx, "system failed",
				slog.String("system", s.name),
				slog.Uint64("tick", w.tick),
				slog.Any("error", err),
			)
			errs = append(errs, err)
		}
	}

	w.ClearTrackers()
	w.logger.DebugContext(ctx, "tick finished", slog.Uint64("tick", w.tick))

	return errors.Join(errs...)
}

// Removed injects the removal notification view for component type T into a
// system. The backing reader slot is private to the system and keyed by the
// component type: the first call for T creates it, and every later call in
// any tick hands back the same reader, so the view resumes at the cursor
// position the system last consumed to.
func Removed[T any](s *SystemState) removal.RemovedComponents[T] {
	id := component.Register[T](s.world.types)
	slot, ok := s.readers[id]
	if !ok {
		slot = &removal.Reader[T]{}
		s.readers[id] = slot
	}
	return removal.For(s.world.types, slot.(*removal.Reader[T]), s.world.removed)
}
