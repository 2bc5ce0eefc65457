package okm

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/okm/internal/conv"
)

// KeyBitmap returns the keys of s as a roaring bitmap. Every key must fit in
// a uint32 (for example Unix seconds). Bitmaps of several series can be
// intersected to find common timestamps cheaply.
func KeyBitmap[K Integer, V any](s Segment[K, V]) (*roaring.Bitmap, error) {
	entries := s.Entries()
	keys := make([]uint32, len(entries))
	for i, e := range entries {
		k, err := conv.ToUint32(e.Key)
		if err != nil {
			return nil, fmt.Errorf("okm: key bitmap: %w", err)
		}
		keys[i] = k
	}
	bm := roaring.New()
	bm.AddMany(keys)
	return bm, nil
}

// BitmapKeys returns the members of bm in ascending order, converted to K.
// It fails when a member does not fit in K, for example 300 for a uint8 key.
func BitmapKeys[K Integer](bm *roaring.Bitmap) ([]K, error) {
	keys := make([]K, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		k, err := conv.FromUint32[K](it.Next())
		if err != nil {
			return nil, fmt.Errorf("okm: bitmap keys: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Restrict returns an owned map with the entries of s whose key is in bm.
// Keys that do not fit in a uint32 are never in bm.
func Restrict[K Integer, V any](s Segment[K, V], bm *roaring.Bitmap, opts ...Option) *Map[K, V] {
	m := New[K, V](opts...)
	for _, e := range s.Entries() {
		k, err := conv.ToUint32(e.Key)
		if err != nil || !bm.Contains(k) {
			continue
		}
		m.push(OpInsert, e)
	}
	return m
}
