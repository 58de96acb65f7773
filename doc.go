// Package entitykit provides a minimal, type-safe entity-component store
// with removal notification built in.
//
// A World owns entities, their typed data fields (components), and a removal
// notification bus. Every explicit component removal, and every despawn of
// an entity still carrying components, produces a notification that systems
// can consume on their own schedule, each with an independent read cursor.
//
// Key features:
//
//   - Type-safe component access using generics
//   - Removal notifications retained for exactly two ticks
//   - Per-system read cursors with consumption-exact advancement
//   - No I/O, no blocking: everything is synchronous and in-memory
//
// Basic usage:
//
//	type Health struct{ HP int }
//
//	world := entitykit.New()
//
//	world.AddSystem("mourn", func(ctx context.Context, s *entitykit.SystemState) error {
//		removed := entitykit.Removed[Health](s)
//		for e := range removed.Read() {
//			fmt.Println("entity lost Health:", e)
//		}
//		return nil
//	})
//
//	e := world.Spawn()
//	entitykit.Insert(world, e, Health{HP: 10})
//	entitykit.Remove[Health](world, e)
//
//	world.RunTick(ctx) // runs systems, then rotates notification buffers
//
// The reader slot behind Removed is private to the system and keyed by
// component type, so repeated invocations of the same system resume where the
// previous tick stopped, while other systems keep their own positions.
//
// The reusable primitives underneath the World live in pkg/: entity identity
// (pkg/entity), component type resolution (pkg/component), the doubly
// buffered feed (pkg/events), the sparse container (pkg/sparseset), and the
// removal bus itself (pkg/removal). They can be composed directly when the
// World facade is more store than you need.
package entitykit
