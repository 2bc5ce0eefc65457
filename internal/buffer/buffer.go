package buffer

import "fmt"

// MinGrowth is the capacity an empty owned buffer grows to on first use.
const MinGrowth = 16

// Buffer is contiguous storage for items of type T.
// The zero value is an empty owned buffer.
type Buffer[T any] struct {
	items    []T
	borrowed bool
}

// New returns an owned buffer with room for capacity items.
func New[T any](capacity int) Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return Buffer[T]{items: make([]T, 0, capacity)}
}

// Adopt takes ownership of items, which the caller must not use afterwards.
func Adopt[T any](items []T) Buffer[T] {
	return Buffer[T]{items: items}
}

// Borrow wraps items without copying. len(items) items are live.
// The returned buffer never reallocates.
func Borrow[T any](items []T) Buffer[T] {
	return Buffer[T]{items: items[:len(items):len(items)], borrowed: true}
}

// Owned reports whether the buffer allocated its own memory.
func (b *Buffer[T]) Owned() bool { return !b.borrowed }

// Len returns the number of live items.
func (b *Buffer[T]) Len() int { return len(b.items) }

// Cap returns the number of allocated items.
func (b *Buffer[T]) Cap() int { return cap(b.items) }

// Items returns the live items. The slice aliases the buffer.
func (b *Buffer[T]) Items() []T { return b.items }

// Reserve guarantees room for n more items and reports whether it reallocated.
func (b *Buffer[T]) Reserve(n int) bool {
	if n <= 0 || len(b.items)+n <= cap(b.items) {
		return false
	}
	b.mustOwn("reserve")
	b.realloc(len(b.items) + n)
	return true
}

// Append adds v after the last item, doubling capacity when full.
func (b *Buffer[T]) Append(v T) bool {
	grew := false
	if len(b.items) == cap(b.items) {
		b.mustOwn("append")
		b.realloc(b.nextCap(len(b.items) + 1))
		grew = true
	}
	b.items = append(b.items, v)
	return grew
}

// AppendSlice adds vs after the last item. Growth keeps at least extra spare
// items beyond what vs needs.
func (b *Buffer[T]) AppendSlice(vs []T, extra int) bool {
	grew := false
	if need := len(b.items) + len(vs); need > cap(b.items) {
		b.mustOwn("append")
		b.realloc(need + max(extra, 0))
		grew = true
	}
	b.items = append(b.items, vs...)
	return grew
}

// Prepend places vs before the first item. Growth keeps at least extra spare
// items beyond what vs needs.
func (b *Buffer[T]) Prepend(vs []T, extra int) bool {
	n, m := len(b.items), len(vs)
	if m == 0 {
		return false
	}
	if n+m > cap(b.items) {
		b.mustOwn("prepend")
		items := make([]T, n+m, n+m+max(extra, 0))
		copy(items, vs)
		copy(items[m:], b.items)
		b.items = items
		return true
	}
	b.items = b.items[:n+m]
	copy(b.items[m:], b.items[:n])
	copy(b.items, vs)
	return false
}

// InsertAt places v at pos, moving items at pos and after one slot right.
// When full the buffer doubles and copies head and tail around the gap in
// a single pass.
func (b *Buffer[T]) InsertAt(pos int, v T) bool {
	n := len(b.items)
	if pos < 0 || pos > n {
		panic(fmt.Sprintf("buffer: insert position %d out of range [0,%d]", pos, n))
	}
	if n == cap(b.items) {
		b.mustOwn("insert")
		items := make([]T, n+1, b.nextCap(n+1))
		copy(items, b.items[:pos])
		copy(items[pos+1:], b.items[pos:])
		items[pos] = v
		b.items = items
		return true
	}
	b.items = b.items[:n+1]
	copy(b.items[pos+1:], b.items[pos:n])
	b.items[pos] = v
	return false
}

// RemoveAt deletes the item at pos, moving later items one slot left.
func (b *Buffer[T]) RemoveAt(pos int) {
	n := len(b.items)
	if pos < 0 || pos >= n {
		panic(fmt.Sprintf("buffer: remove position %d out of range [0,%d)", pos, n))
	}
	copy(b.items[pos:], b.items[pos+1:])
	var zero T
	b.items[n-1] = zero
	b.items = b.items[:n-1]
}

// Truncate keeps the first n items. Capacity is retained.
func (b *Buffer[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(b.items) {
		clear(b.items[n:])
		b.items = b.items[:n]
	}
}

// Reset drops all items and keeps the capacity for reuse.
func (b *Buffer[T]) Reset() {
	b.Truncate(0)
}

// Release forgets the backing memory. Borrowed memory is only detached.
func (b *Buffer[T]) Release() {
	b.items = nil
	b.borrowed = false
}

// Clone returns an owned copy with capacity for at least extra more items.
func (b *Buffer[T]) Clone(extra int) Buffer[T] {
	items := make([]T, len(b.items), len(b.items)+max(extra, 0))
	copy(items, b.items)
	return Buffer[T]{items: items}
}

func (b *Buffer[T]) nextCap(need int) int {
	c := cap(b.items) * 2
	if c == 0 {
		c = MinGrowth
	}
	for c < need {
		c *= 2
	}
	return c
}

func (b *Buffer[T]) realloc(capacity int) {
	items := make([]T, len(b.items), capacity)
	copy(items, b.items)
	b.items = items
}

func (b *Buffer[T]) mustOwn(op string) {
	if b.borrowed {
		panic("buffer: " + op + " on borrowed buffer")
	}
}
