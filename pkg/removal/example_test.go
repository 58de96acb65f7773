package removal_test

import (
	"fmt"

	"github.com/dmitrymomot/entitykit/pkg/component"
	"github.com/dmitrymomot/entitykit/pkg/entity"
	"github.com/dmitrymomot/entitykit/pkg/removal"
)

type Poisoned struct{ Ticks int }

func Example() {
	types := component.NewRegistry()
	removed := removal.NewRegistry()
	alloc := entity.NewAllocator()

	// Store mutation path: two entities lose their Poisoned component.
	a := alloc.Alloc()
	b := alloc.Alloc()
	poisonID := component.Register[Poisoned](types)
	removed.Send(poisonID, a)
	removed.Send(poisonID, b)

	// Consumer side: a persistent reader plus a per-invocation view.
	var reader removal.Reader[Poisoned]
	view := removal.For(types, &reader, removed)

	fmt.Println("unread:", view.Len())
	for e := range view.Read() {
		fmt.Println("cured:", e)
	}
	fmt.Println("unread after read:", view.Len())

	// End of tick.
	removed.Update()

	// Output:
	// unread: 2
	// cured: 0v1
	// cured: 1v1
	// unread after read: 0
}
