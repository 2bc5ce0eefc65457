package okm

import "github.com/hupe1980/okm/internal/conv"

// Integer is the set of Go integer kinds usable as keys.
type Integer interface {
	conv.Integer
}

// Float is the set of Go floating-point kinds usable as keys.
// NaN has no place in a total order and must not be used as a key.
type Float interface {
	~float32 | ~float64
}

// Key is the constraint for map keys. Keys must support arithmetic because
// interpolation search predicts positions from key distances.
type Key interface {
	Integer | Float
}

// Entry is a key/value pair stored by value in the map's contiguous buffer.
type Entry[K Key, V any] struct {
	Key   K
	Value V
}

// Segment is anything that exposes a sorted, duplicate-free run of entries.
// Both *Map and *View satisfy it.
type Segment[K Key, V any] interface {
	Entries() []Entry[K, V]
}
