package component_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/pkg/component"
)

type health struct{ HP int }

type position struct{ X, Y float64 }

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("idempotent per type", func(t *testing.T) {
		t.Parallel()

		reg := component.NewRegistry()

		id1 := component.Register[health](reg)
		id2 := component.Register[health](reg)

		assert.Equal(t, id1, id2)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("distinct types get distinct ids", func(t *testing.T) {
		t.Parallel()

		reg := component.NewRegistry()

		hid := component.Register[health](reg)
		pid := component.Register[position](reg)

		assert.NotEqual(t, hid, pid)
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("registries are independent", func(t *testing.T) {
		t.Parallel()

		a := component.NewRegistry()
		b := component.NewRegistry()

		component.Register[position](a)
		aid := component.Register[health](a)
		bid := component.Register[health](b)

		// Same type, different registries: IDs reflect registration order,
		// not the type itself.
		assert.NotEqual(t, aid, bid)
	})
}

func TestRegistry_IDOf(t *testing.T) {
	t.Parallel()

	t.Run("unregistered type", func(t *testing.T) {
		t.Parallel()

		reg := component.NewRegistry()

		_, ok := component.IDOf[health](reg)
		assert.False(t, ok)
	})

	t.Run("registered type", func(t *testing.T) {
		t.Parallel()

		reg := component.NewRegistry()
		want := component.Register[health](reg)

		got, ok := component.IDOf[health](reg)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})
}

func TestRegistry_TypeOf(t *testing.T) {
	t.Parallel()

	reg := component.NewRegistry()
	id := component.Register[health](reg)

	typ, ok := reg.TypeOf(id)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[health](), typ)

	_, ok = reg.TypeOf(id + 100)
	assert.False(t, ok)
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	reg := component.NewRegistry()

	const goroutines = 32
	ids := make([]component.ID, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = component.Register[health](reg)
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Equal(t, ids[0], ids[i])
	}
	assert.Equal(t, 1, reg.Len())
}
