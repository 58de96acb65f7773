// Package sparseset provides a generic associative container with stable
// insertion-order iteration.
//
// The container combines a map index with a dense slice of values, so lookups
// are O(1) while iteration visits entries in the order they were first
// inserted. This makes it suitable for registries that are queried constantly
// but need deterministic diagnostics output.
//
// Basic usage:
//
//	set := sparseset.New[string, int]()
//	set.Set("a", 1)
//	set.Set("b", 2)
//
//	v, ok := set.Get("a")
//
//	// Lazily create missing entries
//	v = set.GetOrInsertWith("c", func() int { return 3 })
//
//	// Iterate in insertion order
//	for k, v := range set.All() {
//		fmt.Println(k, v)
//	}
//
// The container is not safe for concurrent use; callers coordinate access
// the same way they would for a plain map.
package sparseset
