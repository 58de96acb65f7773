package entity

import "fmt"

// Entity identifies one row in a data store. It is a plain value: comparable,
// cheap to copy, and usable as a map key. A held Entity may refer to a row
// that has since been destroyed; use Allocator.Alive to check.
type Entity struct {
	index   uint32
	version uint32
}

// Nil is the zero Entity. It never refers to a live row.
var Nil = Entity{}

// Index returns the row index of the entity.
func (e Entity) Index() uint32 {
	return e.index
}

// Version returns the recycle generation of the entity's index.
func (e Entity) Version() uint32 {
	return e.version
}

// IsNil reports whether the entity is the zero value.
func (e Entity) IsNil() bool {
	return e == Nil
}

func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.index, e.version)
}
