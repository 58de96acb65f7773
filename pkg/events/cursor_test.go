package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/pkg/events"
)

func TestCursor_Read(t *testing.T) {
	t.Parallel()

	t.Run("yields unseen events in order", func(t *testing.T) {
		t.Parallel()

		f := events.NewFeed[string]()
		f.Send("a")
		f.Send("b")

		var c events.Cursor[string]
		assert.Equal(t, []string{"a", "b"}, collect(&c, f))
		assert.Nil(t, collect(&c, f), "second read yields nothing")
	})

	t.Run("spans both generations oldest first", func(t *testing.T) {
		t.Parallel()

		f := events.NewFeed[string]()
		f.Send("a")
		f.Update()
		f.Send("b")

		var c events.Cursor[string]
		assert.Equal(t, []string{"a", "b"}, collect(&c, f))
	})

	t.Run("nil feed reads as empty", func(t *testing.T) {
		t.Parallel()

		var c events.Cursor[string]
		assert.Nil(t, collect(&c, nil))
		assert.Equal(t, 0, c.Len(nil))
		assert.True(t, c.IsEmpty(nil))
	})

	t.Run("resumes after new sends", func(t *testing.T) {
		t.Parallel()

		f := events.NewFeed[string]()
		f.Send("a")

		var c events.Cursor[string]
		assert.Equal(t, []string{"a"}, collect(&c, f))

		f.Send("b")
		assert.Equal(t, []string{"b"}, collect(&c, f))
	})
}

func TestCursor_PartialConsumption(t *testing.T) {
	t.Parallel()

	t.Run("breaking advances only past observed events", func(t *testing.T) {
		t.Parallel()

		f := events.NewFeed[string]()
		f.Send("a")
		f.Send("b")
		f.Send("c")

		var c events.Cursor[string]
		for ev := range c.Read(f) {
			if ev == "a" {
				break
			}
		}

		// "a" was observed; "b" and "c" remain unread.
		assert.Equal(t, 2, c.Len(f))
		assert.Equal(t, []string{"b", "c"}, collect(&c, f))
	})

	t.Run("abandoned sequence leaves cursor untouched", func(t *testing.T) {
		t.Parallel()

		f := events.NewFeed[string]()
		f.Send("a")

		var c events.Cursor[string]
		_ = c.Read(f) // constructed but never ranged

		assert.Equal(t, 1, c.Len(f))
	})
}

func TestCursor_Len(t *testing.T) {
	t.Parallel()

	f := events.NewFeed[string]()
	var c events.Cursor[string]

	assert.Equal(t, 0, c.Len(f))

	f.Send("a")
	f.Send("b")
	assert.Equal(t, 2, c.Len(f))
	assert.False(t, c.IsEmpty(f))

	f.Update()
	assert.Equal(t, 2, c.Len(f), "one rotation must not hide unread events")

	f.Update()
	assert.Equal(t, 0, c.Len(f), "two rotations expire unread events")
	assert.True(t, c.IsEmpty(f))
}

func TestCursor_Clear(t *testing.T) {
	t.Parallel()

	f := events.NewFeed[string]()
	f.Send("a")
	f.Send("b")

	var skipper, other events.Cursor[string]
	skipper.Clear(f)

	assert.True(t, skipper.IsEmpty(f))
	assert.Nil(t, collect(&skipper, f))

	// Independent cursors are unaffected.
	assert.Equal(t, []string{"a", "b"}, collect(&other, f))

	f.Send("c")
	assert.Equal(t, []string{"c"}, collect(&skipper, f), "clear only discards events sent before it")
}

func TestCursor_Missed(t *testing.T) {
	t.Parallel()

	f := events.NewFeed[string]()
	f.Send("a")
	f.Send("b")
	f.Update()
	f.Update()

	var c events.Cursor[string]
	assert.Equal(t, 2, c.Missed(f))

	f.Send("c")
	require.Equal(t, []string{"c"}, collect(&c, f))
	assert.Equal(t, 0, c.Missed(f), "consuming past the gap settles the count")
}
