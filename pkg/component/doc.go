// Package component resolves Go types to stable component identifiers.
//
// A store attaches typed data fields (components) to entities. Internally it
// keys storage by component.ID rather than reflect.Type: an ID is a small
// integer that is stable for the registry's lifetime and cheap to use as a
// map key. Each store owns its own Registry, so IDs from different stores
// are not interchangeable.
//
// Basic usage:
//
//	type Health struct{ HP int }
//
//	reg := component.NewRegistry()
//
//	id := component.Register[Health](reg) // assigns on first call
//	id2, ok := component.IDOf[Health](reg)
//	// id == id2, ok == true
//
// Registration is idempotent: repeated Register calls for the same type
// return the same ID. The Registry is safe for concurrent use.
package component
