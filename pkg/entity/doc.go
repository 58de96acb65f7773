// Package entity provides entity identity for runtime data stores.
//
// An Entity is a versioned handle: an index into the store's rows plus a
// version counter. Indexes are recycled when entities are freed, and every
// recycle bumps the version, so a handle to a destroyed entity never aliases
// an entity created later at the same index.
//
// Basic usage:
//
//	alloc := entity.NewAllocator()
//
//	e := alloc.Alloc()
//	alloc.Alive(e) // true
//
//	alloc.Free(e)
//	alloc.Alive(e) // false
//
//	// The index is reused with a new version
//	e2 := alloc.Alloc()
//	_ = e2 // e2 != e even if they share an index
//
// The allocator is not safe for concurrent use; the store owner sequences
// entity creation and destruction.
package entity
