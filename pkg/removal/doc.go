// Package removal delivers notifications that an entity no longer carries a
// component of a specific type, whether the component was removed explicitly
// or the entity was destroyed while carrying it.
//
// The Registry keeps one doubly-buffered feed per component type, created
// lazily on the first Send for that type. Store mutation paths call Send for
// every removal; the store owner calls Update exactly once per tick to rotate
// every feed's generations. Notifications survive exactly two generations, so
// a reader that runs at least once per tick never misses one.
//
// Consumers read through RemovedComponents, a per-component-type view that
// pairs a private Reader (a cursor tagged with the component type) with
// shared read access to the Registry:
//
//	types := component.NewRegistry()
//	removed := removal.NewRegistry()
//
//	// store mutation path
//	removed.Send(component.Register[Health](types), e)
//
//	// consumer, each tick
//	var reader removal.Reader[Health]
//	view := removal.For(types, &reader, removed)
//	for e := range view.Read() {
//		fmt.Println("lost Health:", e)
//	}
//
//	removed.Update() // end of tick
//
// A notification records only the entity and the fact of removal; the
// component's value is not captured. By read time the entity itself may
// already be dead.
//
// Absence is never an error: a component type nothing has ever lost simply
// has no feed, and every read-side operation treats a missing feed as empty.
package removal
