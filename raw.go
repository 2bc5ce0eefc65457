package okm

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/hupe1980/okm/internal/buffer"
)

// plainData reports whether values of t are pure bytes: no pointers the
// garbage collector would have to trace. Only such types may be
// reinterpreted from or to raw memory.
func plainData(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || plainData(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !plainData(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// bytewiseComparable reports whether == on t coincides with comparing its
// bytes: plain data without floats (NaN, signed zero) and without padding.
func bytewiseComparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Array:
		return t.Len() == 0 || bytewiseComparable(t.Elem())
	case reflect.Struct:
		var size uintptr
		for i := range t.NumField() {
			f := t.Field(i)
			if f.Name == "_" || !bytewiseComparable(f.Type) {
				return false
			}
			size += f.Type.Size()
		}
		return size == t.Size()
	default:
		return false
	}
}

func entrySize[K Key, V any]() int {
	return int(unsafe.Sizeof(Entry[K, V]{}))
}

func checkPlainEntry[K Key, V any]() error {
	if t := reflect.TypeFor[Entry[K, V]](); !plainData(t) {
		return fmt.Errorf("%w: %s", ErrNotPlainData, t)
	}
	return nil
}

func entriesAsBytes[K Key, V any](entries []Entry[K, V]) []byte {
	if len(entries) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(entries))), len(entries)*entrySize[K, V]()) //nolint:gosec // plain data only
}

// Bytes returns the live entries reinterpreted as raw bytes, without copying.
// The layout is the in-memory layout of Entry[K, V] on this platform,
// including padding. The slice aliases the buffer and is invalidated by any
// mutation. It fails with ErrNotPlainData when entries hold pointers.
func (t *table[K, V]) Bytes() ([]byte, error) {
	if err := checkPlainEntry[K, V](); err != nil {
		return nil, err
	}
	return entriesAsBytes(t.buf.Items()), nil
}

// FromBytes builds an owned map from a copy of data, which must hold
// entries in the layout produced by Bytes. Sortedness is not checked; use
// Validate when data is not trusted.
func FromBytes[K Key, V any](data []byte, opts ...Option) (*Map[K, V], error) {
	if err := checkPlainEntry[K, V](); err != nil {
		return nil, err
	}
	size := entrySize[K, V]()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes, entry size %d", ErrInvalidLength, len(data), size)
	}
	o := applyOptions(opts)
	count := len(data) / size
	entries := make([]Entry[K, V], count, max(count, o.capacity))
	copy(entriesAsBytes(entries), data)
	return newMap(buffer.Adopt(entries), o), nil
}
