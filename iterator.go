package okm

// Iterator is a position inside one container. It holds no state besides the
// index, so it is cheap to copy and compare.
//
// Any mutation of the container invalidates every live iterator: growth
// moves the buffer, and shifting inserts or removes move entries past the
// shift point. Re-acquire iterators after mutating.
type Iterator[K Key, V any] struct {
	t   *table[K, V]
	pos int
}

// Pos returns the index the iterator points at.
func (it Iterator[K, V]) Pos() int { return it.pos }

// Valid reports whether the iterator points at an entry.
func (it Iterator[K, V]) Valid() bool {
	return it.t != nil && it.pos >= 0 && it.pos < it.t.buf.Len()
}

// IsEnd reports whether the iterator is the end sentinel.
func (it Iterator[K, V]) IsEnd() bool {
	return it.t == nil || it.pos == it.t.buf.Len()
}

// Key returns the key at the iterator, or the zero key when the iterator is
// outside [0, Len).
func (it Iterator[K, V]) Key() K {
	if !it.Valid() {
		var zero K
		return zero
	}
	return it.t.buf.Items()[it.pos].Key
}

// Value returns the value at the iterator.
// The iterator must be Valid; otherwise Value panics.
func (it Iterator[K, V]) Value() V {
	return it.t.buf.Items()[it.pos].Value
}

// ValuePtr returns a pointer to the value at the iterator for in-place update.
// The iterator must be Valid; otherwise ValuePtr panics.
func (it Iterator[K, V]) ValuePtr() *V {
	return &it.t.buf.Items()[it.pos].Value
}

// Entry returns the entry at the iterator.
// The iterator must be Valid; otherwise Entry panics.
func (it Iterator[K, V]) Entry() Entry[K, V] {
	return it.t.buf.Items()[it.pos]
}

// Next returns the iterator advanced by one.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	it.pos++
	return it
}

// Prev returns the iterator moved back by one.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	it.pos--
	return it
}

// Add returns the iterator moved by n positions.
func (it Iterator[K, V]) Add(n int) Iterator[K, V] {
	it.pos += n
	return it
}

// Equal compares positions. Both iterators must come from the same container.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.pos == other.pos
}

// Less reports whether it is before other in the same container.
func (it Iterator[K, V]) Less(other Iterator[K, V]) bool {
	return it.pos < other.pos
}
