// Package okm provides an ordered key map: a dense, sorted, array-backed
// associative container for numeric keys.
//
// okm is built for monotonically biased workloads such as time series, where
// almost every insert appends after the current last key and lookups favor
// either end of the key range or positions close to a previous one. Instead of
// a hash table or a tree, all entries live in one contiguous slice in key
// order, which gives cache-friendly scans, cheap range copies and zero-copy
// snapshots.
//
// # Quick Start
//
//	m := okm.New[uint32, float64]()
//	m.Insert(1700000000, 1.5) // appends: O(1) amortized
//	m.Insert(1700000060, 1.7)
//
//	v := m.Get(1700000000)              // zero value on miss
//	v, ok := m.Lookup(1700000060)       // explicit presence
//	it := m.LowerBound(1700000030)      // first key >= 1700000030
//	for k, v := range m.All() { ... }   // ascending key order
//
// # Search Strategies
//
// Lookups first try the cached first and last keys. Everything else goes to
// the Algorithm chosen at construction:
//
//	okm.New[int64, float64](okm.WithAlgorithm(okm.Interpolation))
//
// Bisection is O(log n) for any distribution. Interpolation predicts probe
// positions from key distances and needs far fewer probes on evenly spaced
// keys, but degrades toward O(n) when keys cluster.
//
// # Ranges and Merging
//
// Mid copies a half-open key range into a new map. InsertAtBeginning and
// InsertAfterEnd splice independently built, non-overlapping segments
// without re-sorting:
//
//	day := m.Mid(dayStart, dayEnd, 0)
//	ok := archive.InsertAfterEnd(day) // false if day overlaps archive
//
// # Zero-Copy Views
//
// A View wraps memory it does not own and cannot grow. For plain-data entry
// types (no pointers), Bytes exposes the buffer as raw bytes and ViewBytes or
// OpenView turn such bytes back into a view without copying:
//
//	raw, _ := m.Bytes()
//	_ = os.WriteFile("series.okm", raw, 0o644)
//
//	v, _ := okm.OpenView[uint32, float64]("series.okm")
//	defer v.Close()
//
// OpenReadOnlyView maps the same file shared and read-only; its Set always
// fails.
//
// Views trust their input: the bytes must already be sorted and duplicate
// free. Call Validate when in doubt.
//
// # Invalidation
//
// Any mutation invalidates iterators, pointers returned by Ref, and slices
// returned by Entries or Bytes. Growth moves the whole buffer; shifting
// inserts and removes move every entry after the shift point.
//
// # Thread Safety
//
// Maps and views are not safe for concurrent use. Confine an instance to one
// goroutine or serialize access with a mutex.
//
// # Observability
//
// WithLogger and WithMetrics attach optional diagnostics for misses, buffer
// growth, discouraged mid-buffer shifts and merges. Unset hooks cost nothing
// and never change results.
package okm
