package okm

import "fmt"

// Algorithm selects the search strategy a container uses once the boundary
// fast paths are exhausted. It is fixed at construction.
type Algorithm int

const (
	// Bisection is classic binary search. O(log n) for any key distribution.
	Bisection Algorithm = iota
	// Interpolation predicts probe positions from the keys at the current
	// bounds. Expected O(log log n) probes for evenly spaced keys such as
	// timestamps, degrading toward O(n) for clustered keys.
	Interpolation
)

func (a Algorithm) String() string {
	switch a {
	case Bisection:
		return "bisection"
	case Interpolation:
		return "interpolation"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

type intent uint8

const (
	intentLowerBound intent = iota
	intentUpperBound
	intentFind
)

type searchFunc[K Key, V any] func(entries []Entry[K, V], key K, in intent) int

func searchFor[K Key, V any](a Algorithm) searchFunc[K, V] {
	if a == Interpolation {
		return interpolate[K, V]
	}
	return bisect[K, V]
}

// bisect and interpolate require entries[0].Key < key < entries[len-1].Key.
// They return the boundary index for lower/upper bound intents, and either
// the hit or len(entries) for the find intent.

func bisect[K Key, V any](entries []Entry[K, V], key K, in intent) int {
	begin, end := 0, len(entries)-1
	for begin+1 < end {
		pos := (begin + end) / 2
		k := entries[pos].Key
		if k == key {
			if in == intentUpperBound {
				pos++
			}
			return pos
		}
		if key > k {
			begin = pos
		} else {
			end = pos
		}
	}
	if in == intentFind {
		return len(entries)
	}
	return end
}

func interpolate[K Key, V any](entries []Entry[K, V], key K, in intent) int {
	begin, end := 0, len(entries)-1
	beginKey, endKey := entries[begin].Key, entries[end].Key
	for begin+1 < end {
		// Computed in float64 so signed spans cannot overflow. The result is
		// clamped into (begin, end), so rounding only costs extra probes.
		ratio := (float64(key) - float64(beginKey)) / (float64(endKey) - float64(beginKey))
		pos := begin + int(float64(end-begin)*ratio)
		if pos <= begin {
			pos = begin + 1
		} else if pos >= end {
			pos = end - 1
		}
		k := entries[pos].Key
		if k == key {
			if in == intentUpperBound {
				pos++
			}
			return pos
		}
		if key > k {
			begin, beginKey = pos, k
		} else {
			end, endKey = pos, k
		}
	}
	if in == intentFind {
		return len(entries)
	}
	return end
}
