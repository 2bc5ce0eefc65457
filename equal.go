package okm

import (
	"bytes"
	"reflect"
	"unsafe"
)

// Equal reports whether a and b hold the same keys with equal values.
//
// When Entry[K, V] compares bytewise and V's size is a multiple of 8, the
// entries are compared as raw memory; otherwise entry by entry. Both paths
// give the same answer.
func Equal[K Key, V comparable](a, b Segment[K, V]) bool {
	ea, eb := a.Entries(), b.Entries()
	if !sameShape(ea, eb) {
		return false
	}
	var v V
	if unsafe.Sizeof(v)%8 == 0 && bytewiseComparable(reflect.TypeFor[Entry[K, V]]()) {
		return bytes.Equal(entriesAsBytes(ea), entriesAsBytes(eb))
	}
	for i := range ea {
		if ea[i].Key != eb[i].Key || ea[i].Value != eb[i].Value {
			return false
		}
	}
	return true
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[K Key, V any](a, b Segment[K, V], eq func(V, V) bool) bool {
	ea, eb := a.Entries(), b.Entries()
	if !sameShape(ea, eb) {
		return false
	}
	for i := range ea {
		if ea[i].Key != eb[i].Key || !eq(ea[i].Value, eb[i].Value) {
			return false
		}
	}
	return true
}

// EqualMap reports whether s holds exactly the pairs of ref.
func EqualMap[K Key, V comparable](s Segment[K, V], ref map[K]V) bool {
	entries := s.Entries()
	if len(entries) != len(ref) {
		return false
	}
	for _, e := range entries {
		if v, ok := ref[e.Key]; !ok || v != e.Value {
			return false
		}
	}
	return true
}

// sameShape compares count and boundary keys.
func sameShape[K Key, V any](a, b []Entry[K, V]) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return a[0].Key == b[0].Key && a[len(a)-1].Key == b[len(b)-1].Key
}
