// Package events provides a doubly-buffered, in-memory event feed with
// independent per-reader cursors.
//
// A Feed retains exactly two generations of events: the current one, which
// Send appends to, and the previous one. Update rotates generations: the
// previous generation is dropped, the current one becomes previous, and a
// fresh current generation is opened. Call Update once per logical tick:
// skipping it lets the current generation grow without bound, while calling
// it more than once per tick expires events before slow readers have seen
// them. Every event carries a monotonically increasing ID unique within its
// feed.
//
// Readers track their own progress with a Cursor. Each cursor is owned by
// exactly one reader and advances only as events are actually consumed, so
// a partially ranged Read leaves the cursor at the last event observed.
//
// Basic usage:
//
//	feed := events.NewFeed[string]()
//	feed.Send("first")
//	feed.Send("second")
//
//	var cur events.Cursor[string]
//	for ev := range cur.Read(feed) {
//		fmt.Println(ev)
//	}
//
//	feed.Update() // end of tick: rotate generations
//
// Neither Feed nor Cursor is internally synchronized. Sends and Update
// require exclusive access to the feed; readers holding distinct cursors may
// read concurrently as long as no writer is active.
package events
