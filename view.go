package okm

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/okm/internal/buffer"
	"github.com/hupe1980/okm/internal/mmap"
)

// View is a read-only, non-owning map over memory it does not manage:
// a caller's slice, a byte region, or a memory-mapped file.
//
// A View has the full lookup API of Map and can update values of existing
// keys in place, but it cannot grow: it has no Insert, Remove or merge
// methods. Use Clone to obtain an owned, growable Map.
//
// The caller guarantees that the memory outlives the view, is not modified
// behind its back, and is already strictly ascending by key. The view does
// not validate that (see Validate).
type View[K Key, V any] struct {
	table[K, V]
	readOnly bool
}

// ViewOf wraps entries without copying. WithCapacity is ignored.
func ViewOf[K Key, V any](entries []Entry[K, V], opts ...Option) *View[K, V] {
	return &View[K, V]{table: newTable(buffer.Borrow(entries), applyOptions(opts))}
}

// ViewBytes reinterprets data as entries without copying. data must be a
// whole number of entries in the layout produced by Bytes and start at an
// address aligned for Entry[K, V].
func ViewBytes[K Key, V any](data []byte, opts ...Option) (*View[K, V], error) {
	entries, err := bytesAsEntries[K, V](data)
	if err != nil {
		return nil, err
	}
	return ViewOf(entries, opts...), nil
}

func bytesAsEntries[K Key, V any](data []byte) ([]Entry[K, V], error) {
	if err := checkPlainEntry[K, V](); err != nil {
		return nil, err
	}
	size := entrySize[K, V]()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes, entry size %d", ErrInvalidLength, len(data), size)
	}
	if len(data) == 0 {
		return nil, nil
	}
	ptr := unsafe.Pointer(unsafe.SliceData(data)) //nolint:gosec // plain data only
	if align := unsafe.Alignof(Entry[K, V]{}); uintptr(ptr)%align != 0 {
		return nil, fmt.Errorf("%w: alignment %d", ErrMisaligned, align)
	}
	return unsafe.Slice((*Entry[K, V])(ptr), len(data)/size), nil //nolint:gosec // plain data only
}

// Set overwrites the value of an existing key in place and reports whether
// it did. It never inserts, and always fails on a view opened with
// OpenReadOnlyView.
func (v *View[K, V]) Set(key K, value V) bool {
	if v.readOnly {
		return false
	}
	pos := v.find(key)
	items := v.buf.Items()
	if pos == len(items) {
		v.miss(OpSet, key)
		return false
	}
	items[pos].Value = value
	return true
}

// MappedView is a View over a memory-mapped file written from Map.Bytes or
// WriteFile.
//
// OpenView maps pages copy-on-write: Set changes only this process's copy and
// never the file. OpenReadOnlyView maps them read-only and shared, so no page
// is ever copied and Set always fails. Close unmaps the file; the view is
// empty afterwards.
type MappedView[K Key, V any] struct {
	*View[K, V]
	mapping *mmap.Mapping
}

// OpenView maps the file at path and wraps it as a view.
func OpenView[K Key, V any](path string, opts ...Option) (*MappedView[K, V], error) {
	return openMapped[K, V](path, mmap.Private, opts)
}

// OpenReadOnlyView is OpenView without in-place updates. Many processes can
// share the same physical pages of one snapshot. Writing through Entries or
// Iterator.ValuePtr faults.
func OpenReadOnlyView[K Key, V any](path string, opts ...Option) (*MappedView[K, V], error) {
	return openMapped[K, V](path, mmap.ReadOnly, opts)
}

func openMapped[K Key, V any](path string, mode mmap.Mode, opts []Option) (*MappedView[K, V], error) {
	m, err := mmap.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("okm: open view: %w", err)
	}
	entries, err := bytesAsEntries[K, V](m.Bytes())
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	// Lookups into a long series jump around; read-ahead mostly wastes I/O.
	_ = m.Advise(mmap.AccessRandom)
	v := ViewOf(entries, opts...)
	v.readOnly = mode == mmap.ReadOnly
	return &MappedView[K, V]{View: v, mapping: m}, nil
}

// Writable reports whether Set can update values, that is whether the file
// was opened with OpenView rather than OpenReadOnlyView.
func (mv *MappedView[K, V]) Writable() bool {
	return mv.mapping.Mode() == mmap.Private
}

// Close unmaps the file. It is idempotent.
func (mv *MappedView[K, V]) Close() error {
	mv.buf.Release()
	mv.syncBounds()
	return mv.mapping.Close()
}
