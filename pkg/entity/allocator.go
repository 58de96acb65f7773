package entity

type slot struct {
	version uint32
	alive   bool
}

// Allocator hands out entities and recycles freed indexes. Versions start at
// one so no allocated entity ever compares equal to Nil.
type Allocator struct {
	slots []slot
	free  []uint32
	count int
}

// NewAllocator creates an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Alloc returns a fresh entity. Freed indexes are reused before new ones are
// claimed; a reused index carries a bumped version.
func (a *Allocator) Alloc() Entity {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}

	s := &a.slots[index]
	s.version++
	if s.version == 0 {
		// Version wrapped; zero is reserved for Nil.
		s.version = 1
	}
	s.alive = true
	a.count++

	return Entity{index: index, version: s.version}
}

// Free destroys the entity, releasing its index for reuse.
// Returns false if the entity is not alive (already freed or stale handle).
func (a *Allocator) Free(e Entity) bool {
	if !a.Alive(e) {
		return false
	}
	a.slots[e.index].alive = false
	a.free = append(a.free, e.index)
	a.count--
	return true
}

// Alive reports whether the handle refers to a currently allocated entity.
// A handle with a stale version is dead even if its index has been reused.
func (a *Allocator) Alive(e Entity) bool {
	if int(e.index) >= len(a.slots) {
		return false
	}
	s := a.slots[e.index]
	return s.alive && s.version == e.version
}

// Count returns the number of currently allocated entities.
func (a *Allocator) Count() int {
	return a.count
}
