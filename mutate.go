package okm

// Insert stores value under key and returns an iterator to it.
//
// A key greater than every existing key is appended in amortized O(1). An
// existing key has its value overwritten in place. Any other key is placed by
// shifting the tail one slot right, which is O(n) and reported to the
// diagnostic hooks; avoid it on hot paths.
func (m *Map[K, V]) Insert(key K, value V) Iterator[K, V] {
	n := m.buf.Len()
	if n == 0 || key > m.lastKey {
		m.push(OpInsert, Entry[K, V]{Key: key, Value: value})
		return Iterator[K, V]{t: &m.table, pos: n}
	}
	pos := m.lowerBound(key)
	if items := m.buf.Items(); items[pos].Key == key {
		items[pos].Value = value
		return Iterator[K, V]{t: &m.table, pos: pos}
	}
	m.insertBefore(OpInsert, pos, Entry[K, V]{Key: key, Value: value})
	return Iterator[K, V]{t: &m.table, pos: pos}
}

// Ref returns a pointer to the value stored for key, inserting a zero value
// first when key is absent. The pointer is valid until the next mutation.
func (m *Map[K, V]) Ref(key K) *V {
	n := m.buf.Len()
	if n > 0 && key == m.lastKey {
		return &m.buf.Items()[n-1].Value
	}
	if n == 0 || key > m.lastKey {
		m.push(OpRef, Entry[K, V]{Key: key})
		return &m.buf.Items()[n].Value
	}
	pos := m.lowerBound(key)
	if m.buf.Items()[pos].Key != key {
		m.insertBefore(OpRef, pos, Entry[K, V]{Key: key})
	}
	return &m.buf.Items()[pos].Value
}

// Remove deletes key and reports whether it was present. Removing the last
// key is O(1); any other key shifts the tail one slot left.
func (m *Map[K, V]) Remove(key K) bool {
	n := m.buf.Len()
	if n == 0 {
		return false
	}
	if key == m.lastKey {
		m.buf.Truncate(n - 1)
		m.syncBounds()
		return true
	}
	pos := m.find(key)
	if pos == n {
		m.miss(OpRemove, key)
		return false
	}
	m.shifted(OpRemove, key, pos, n, false)
	m.buf.RemoveAt(pos)
	m.syncBounds()
	return true
}

// Clear removes all entries and keeps the capacity for reuse.
func (m *Map[K, V]) Clear() {
	m.buf.Reset()
	m.syncBounds()
}

// TrimAfter drops every entry after LowerBound(key), so that entry becomes
// the last one. It does nothing when that boundary is the first entry or End.
func (m *Map[K, V]) TrimAfter(key K) {
	pos := m.lowerBound(key)
	if pos == 0 || pos == m.buf.Len() {
		return
	}
	m.buf.Truncate(pos + 1)
	m.syncBounds()
}

// Reserve guarantees room for n more entries without reallocation.
// Growing invalidates all iterators and pointers into the map.
func (m *Map[K, V]) Reserve(n int) {
	fromCap := m.buf.Cap()
	if m.buf.Reserve(n) {
		m.grew(OpReserve, fromCap)
	}
}

// Assign replaces the contents of m with a copy of src's entries. The
// existing buffer is reused when it is large enough. src must not be a view
// into m's own buffer.
func (m *Map[K, V]) Assign(src Segment[K, V]) {
	if s, ok := src.(*Map[K, V]); ok && s == m {
		return
	}
	entries := src.Entries()
	fromCap := m.buf.Cap()
	m.buf.Reset()
	if m.buf.AppendSlice(entries, 0) {
		m.grew(OpAssign, fromCap)
	}
	m.syncBounds()
}

// Take moves the contents of m into a new map and leaves m empty with no
// buffer. Iterators into m are invalidated.
func (m *Map[K, V]) Take() *Map[K, V] {
	moved := &Map[K, V]{table: m.table}
	m.buf.Release()
	m.syncBounds()
	return moved
}

// Release drops the buffer. The map stays usable and reallocates on the next
// insert.
func (m *Map[K, V]) Release() {
	m.buf.Release()
	m.syncBounds()
}

func (m *Map[K, V]) push(op Op, e Entry[K, V]) {
	fromCap := m.buf.Cap()
	if m.buf.Append(e) {
		m.grew(op, fromCap)
	}
	m.syncBounds()
}

func (m *Map[K, V]) insertBefore(op Op, pos int, e Entry[K, V]) {
	n := m.buf.Len()
	fromCap := m.buf.Cap()
	grew := m.buf.InsertAt(pos, e)
	m.shifted(op, e.Key, pos, n, grew)
	if grew {
		m.grew(op, fromCap)
	}
	m.syncBounds()
}
