package okm

import (
	"context"
	"iter"
	"log/slog"

	"github.com/hupe1980/okm/internal/buffer"
)

// table is the state and read API shared by owned maps and borrowed views.
type table[K Key, V any] struct {
	buf      buffer.Buffer[Entry[K, V]]
	firstKey K
	lastKey  K
	opts     options
	search   searchFunc[K, V]
}

func newTable[K Key, V any](buf buffer.Buffer[Entry[K, V]], o options) table[K, V] {
	t := table[K, V]{
		buf:    buf,
		opts:   o,
		search: searchFor[K, V](o.algorithm),
	}
	t.syncBounds()
	return t
}

// Map is a dense, sorted, array-backed map from numeric keys to values.
//
// Entries live in one contiguous buffer in ascending key order. Appending a
// key greater than every existing key is amortized O(1); lookups try the
// cached first and last keys before falling back to the configured search
// Algorithm. Inserting or removing in the middle shifts the tail and is O(n).
//
// A Map is not safe for concurrent use. Confine it to one goroutine or guard
// it with a mutex.
type Map[K Key, V any] struct {
	table[K, V]
}

// New creates an empty map. The buffer reserves DefaultCapacity entries
// unless WithCapacity says otherwise.
func New[K Key, V any](opts ...Option) *Map[K, V] {
	o := applyOptions(opts)
	return newMap(buffer.New[Entry[K, V]](o.capacity), o)
}

func newMap[K Key, V any](buf buffer.Buffer[Entry[K, V]], o options) *Map[K, V] {
	return &Map[K, V]{table: newTable(buf, o)}
}

func (t *table[K, V]) syncBounds() {
	items := t.buf.Items()
	if len(items) == 0 {
		var zero K
		t.firstKey, t.lastKey = zero, zero
		return
	}
	t.firstKey, t.lastKey = items[0].Key, items[len(items)-1].Key
}

// Len returns the number of entries.
func (t *table[K, V]) Len() int { return t.buf.Len() }

// Cap returns the number of entries the buffer can hold without growing.
func (t *table[K, V]) Cap() int { return t.buf.Cap() }

// IsEmpty reports whether the container holds no entries.
func (t *table[K, V]) IsEmpty() bool { return t.buf.Len() == 0 }

// FirstKey returns the smallest key, or the zero key when empty.
func (t *table[K, V]) FirstKey() K { return t.firstKey }

// LastKey returns the largest key, or the zero key when empty.
func (t *table[K, V]) LastKey() K { return t.lastKey }

// Interval returns the first and last key.
func (t *table[K, V]) Interval() (K, K) { return t.firstKey, t.lastKey }

// Algorithm returns the search strategy chosen at construction.
func (t *table[K, V]) Algorithm() Algorithm { return t.opts.algorithm }

// Entries returns the live entries in key order. The slice aliases the
// container's buffer and is invalidated by any mutation. Callers must not
// reorder keys through it.
func (t *table[K, V]) Entries() []Entry[K, V] { return t.buf.Items() }

// First returns the value of the smallest key, or the zero value when empty.
func (t *table[K, V]) First() V {
	items := t.buf.Items()
	if len(items) == 0 {
		t.miss(OpFirst, t.firstKey)
		var zero V
		return zero
	}
	return items[0].Value
}

// Last returns the value of the largest key, or the zero value when empty.
func (t *table[K, V]) Last() V {
	items := t.buf.Items()
	if len(items) == 0 {
		t.miss(OpLast, t.lastKey)
		var zero V
		return zero
	}
	return items[len(items)-1].Value
}

// Begin returns an iterator to the first entry.
func (t *table[K, V]) Begin() Iterator[K, V] { return Iterator[K, V]{t: t} }

// End returns the end sentinel.
func (t *table[K, V]) End() Iterator[K, V] { return Iterator[K, V]{t: t, pos: t.buf.Len()} }

// At returns an iterator to position pos. Positions past the last entry
// yield End.
func (t *table[K, V]) At(pos int) Iterator[K, V] {
	return Iterator[K, V]{t: t, pos: min(pos, t.buf.Len())}
}

// lowerBound resolves the boundary fast paths before consulting the search
// strategy.
func (t *table[K, V]) lowerBound(key K) int {
	n := t.buf.Len()
	if n == 0 || key > t.lastKey {
		return n
	}
	if key == t.lastKey {
		return n - 1
	}
	if key <= t.firstKey {
		return 0
	}
	return t.search(t.buf.Items(), key, intentLowerBound)
}

func (t *table[K, V]) find(key K) int {
	pos := t.lowerBound(key)
	items := t.buf.Items()
	if pos < len(items) && items[pos].Key == key {
		return pos
	}
	return len(items)
}

// LowerBound returns an iterator to the first entry with key >= key, or End.
func (t *table[K, V]) LowerBound(key K) Iterator[K, V] {
	return Iterator[K, V]{t: t, pos: t.lowerBound(key)}
}

// UpperBound returns an iterator to the first entry with key > key, or End.
func (t *table[K, V]) UpperBound(key K) Iterator[K, V] {
	pos := t.lowerBound(key)
	if items := t.buf.Items(); pos < len(items) && items[pos].Key == key {
		pos++
	}
	return Iterator[K, V]{t: t, pos: pos}
}

// Find returns an iterator to the entry with exactly key, or End.
func (t *table[K, V]) Find(key K) Iterator[K, V] {
	pos := t.find(key)
	if pos == t.buf.Len() {
		t.miss(OpFind, key)
	}
	return Iterator[K, V]{t: t, pos: pos}
}

// Contains reports whether key is present.
func (t *table[K, V]) Contains(key K) bool {
	return t.find(key) < t.buf.Len()
}

// Get returns the value stored for key. A missing key yields the zero value,
// which is indistinguishable from a stored zero; use Lookup to tell them apart.
// Get never inserts.
func (t *table[K, V]) Get(key K) V {
	v, _ := t.Lookup(key)
	return v
}

// Lookup returns the value stored for key and whether it was present.
func (t *table[K, V]) Lookup(key K) (V, bool) {
	pos := t.find(key)
	items := t.buf.Items()
	if pos == len(items) {
		t.miss(OpGet, key)
		var zero V
		return zero, false
	}
	return items[pos].Value, true
}

// ValueNearPos looks up key by walking from hint, one entry at a time, in the
// direction key lies. It suits callers holding a stale but nearby position,
// such as a cursor advancing through monotonically increasing queries.
// A miss yields the zero value.
func (t *table[K, V]) ValueNearPos(key K, hint int) V {
	v, _ := t.LookupNear(key, hint)
	return v
}

// LookupNear is ValueNearPos with an explicit presence flag. The walk stops
// at an exact match, when it overshoots key, or at either end of the buffer.
func (t *table[K, V]) LookupNear(key K, hint int) (V, bool) {
	items := t.buf.Items()
	if hint >= 0 && hint < len(items) {
		if items[hint].Key == key {
			return items[hint].Value, true
		}
		step := 1
		if key < items[hint].Key {
			step = -1
		}
		for p := hint + step; p >= 0 && p < len(items); p += step {
			k := items[p].Key
			if k == key {
				return items[p].Value, true
			}
			if (step > 0 && k > key) || (step < 0 && k < key) {
				break
			}
		}
	}
	t.miss(OpValueNearPos, key)
	var zero V
	return zero, false
}

// Keys returns a copy of all keys in ascending order.
func (t *table[K, V]) Keys() []K {
	items := t.buf.Items()
	keys := make([]K, len(items))
	for i := range items {
		keys[i] = items[i].Key
	}
	return keys
}

// KeysBetween returns the keys in the closed range [lo, hi]. A zero hi is an
// ordinary bound, not "no upper limit"; pass LastKey to reach the end.
func (t *table[K, V]) KeysBetween(lo, hi K) []K {
	items := t.buf.Items()
	start := t.lowerBound(lo)
	stop := t.UpperBound(hi).pos
	if stop <= start {
		return nil
	}
	keys := make([]K, 0, stop-start)
	for _, e := range items[start:stop] {
		keys = append(keys, e.Key)
	}
	return keys
}

// Values returns a copy of all values in key order.
func (t *table[K, V]) Values() []V {
	items := t.buf.Items()
	values := make([]V, len(items))
	for i := range items {
		values[i] = items[i].Value
	}
	return values
}

// All iterates entries in ascending key order.
func (t *table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range t.buf.Items() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Backward iterates entries in descending key order.
func (t *table[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		items := t.buf.Items()
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i].Key, items[i].Value) {
				return
			}
		}
	}
}

// Clone returns an independently owned deep copy with the same capacity and
// options. Cloning a View is the way to obtain a growable map from it.
func (t *table[K, V]) Clone() *Map[K, V] {
	return newMap(t.buf.Clone(t.buf.Cap()-t.buf.Len()), t.opts)
}

// Validate checks the sortedness and boundary-cache invariants. Views skip
// this check at construction; call it when the source is not trusted.
func (t *table[K, V]) Validate() error {
	items := t.buf.Items()
	for i := 1; i < len(items); i++ {
		if !(items[i-1].Key < items[i].Key) {
			return &ErrOrderViolation{Pos: i, Prev: items[i-1].Key, Next: items[i].Key}
		}
	}
	if len(items) > 0 {
		if items[0].Key != t.firstKey {
			return &ErrOrderViolation{Pos: 0, Prev: t.firstKey, Next: items[0].Key}
		}
		if last := len(items) - 1; items[last].Key != t.lastKey {
			return &ErrOrderViolation{Pos: last, Prev: t.lastKey, Next: items[last].Key}
		}
	}
	return nil
}

func (t *table[K, V]) miss(op Op, key K) {
	if t.opts.metrics != nil {
		t.opts.metrics.RecordMiss(op)
	}
	if l := t.opts.logger; l != nil && l.Enabled(context.Background(), slog.LevelDebug) {
		l.LogMiss(context.Background(), op, key, t.firstKey, t.lastKey, t.buf.Len())
	}
}

func (t *table[K, V]) grew(op Op, fromCap int) {
	if t.opts.metrics != nil {
		t.opts.metrics.RecordGrow(op, fromCap, t.buf.Cap())
	}
	if l := t.opts.logger; l != nil && l.Enabled(context.Background(), slog.LevelDebug) {
		l.LogGrow(context.Background(), op, fromCap, t.buf.Cap())
	}
}

func (t *table[K, V]) shifted(op Op, key K, pos, count int, grew bool) {
	if t.opts.metrics != nil {
		t.opts.metrics.RecordShift(op, pos, count)
	}
	if l := t.opts.logger; l != nil && l.Enabled(context.Background(), slog.LevelWarn) {
		l.LogShift(context.Background(), op, key, pos, count, grew)
	}
}

func (t *table[K, V]) merged(op Op, added int, ok bool) {
	if t.opts.metrics != nil {
		t.opts.metrics.RecordMerge(op, added, ok)
	}
	if l := t.opts.logger; l != nil && l.Enabled(context.Background(), slog.LevelDebug) {
		l.LogMerge(context.Background(), op, added, ok)
	}
}
