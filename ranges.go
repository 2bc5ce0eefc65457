package okm

import "github.com/hupe1980/okm/internal/buffer"

// Mid returns an independently owned copy of the entries with keys in the
// half-open range [from, to). Empty or inverted ranges yield an empty map.
// extraReserve pre-grows the result for entries the caller will append.
func (t *table[K, V]) Mid(from, to K, extraReserve int) *Map[K, V] {
	extraReserve = max(extraReserve, 0)
	start, stop := 0, 0
	if from < to {
		start = t.lowerBound(from)
		stop = t.lowerBound(to)
	}
	if stop <= start {
		return newMap(buffer.New[Entry[K, V]](extraReserve), t.opts)
	}
	src := t.buf.Items()[start:stop]
	buf := buffer.New[Entry[K, V]](len(src) + extraReserve)
	buf.AppendSlice(src, 0)
	return newMap(buf, t.opts)
}

// InsertAtBeginning splices other's entries in front of m's. It succeeds
// only when every key of other is smaller than m's first key; otherwise it
// returns false and leaves m unchanged. O(n+m).
func (m *Map[K, V]) InsertAtBeginning(other Segment[K, V]) bool {
	src := other.Entries()
	if len(src) == 0 {
		return true
	}
	n := m.buf.Len()
	if n > 0 && src[len(src)-1].Key >= m.firstKey {
		m.merged(OpPrepend, len(src), false)
		return false
	}
	fromCap := m.buf.Cap()
	if m.buf.Prepend(src, n+len(src)) {
		m.grew(OpPrepend, fromCap)
	}
	m.syncBounds()
	m.merged(OpPrepend, len(src), true)
	return true
}

// InsertAfterEnd splices other's entries after m's. It succeeds only when
// every key of other is greater than m's last key; otherwise it returns
// false and leaves m unchanged. O(m).
func (m *Map[K, V]) InsertAfterEnd(other Segment[K, V]) bool {
	src := other.Entries()
	if len(src) == 0 {
		return true
	}
	n := m.buf.Len()
	if n > 0 && src[0].Key <= m.lastKey {
		m.merged(OpAppend, len(src), false)
		return false
	}
	fromCap := m.buf.Cap()
	if m.buf.AppendSlice(src, n+len(src)) {
		m.grew(OpAppend, fromCap)
	}
	m.syncBounds()
	m.merged(OpAppend, len(src), true)
	return true
}
