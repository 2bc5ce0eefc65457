package testutil

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGReset(t *testing.T) {
	rng := NewRNG(4711)

	a := rng.Keys(16, 1000)
	rng.Reset()
	b := rng.Keys(16, 1000)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestKeys(t *testing.T) {
	rng := NewRNG(4711)

	keys := rng.Keys(100, 10)

	assert.Len(t, keys, 100)
	for _, k := range keys {
		assert.Less(t, k, uint32(10))
	}
}

func TestUniqueKeys(t *testing.T) {
	rng := NewRNG(4711)

	keys := rng.UniqueKeys(500, 1000)
	require.Len(t, keys, 500)

	slices.Sort(keys)
	assert.Equal(t, -1, FirstUnordered(keys))

	assert.Panics(t, func() { rng.UniqueKeys(11, 10) })
}

func TestShuffleAndPick(t *testing.T) {
	rng := NewRNG(4711)

	keys := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	shuffled := slices.Clone(keys)
	rng.Shuffle(shuffled)
	slices.Sort(shuffled)
	assert.Equal(t, keys, shuffled)

	for _, k := range rng.Pick(keys, 32) {
		assert.Contains(t, keys, k)
	}
}

func TestZipf(t *testing.T) {
	rng := NewRNG(4711)

	var low int
	for range 1000 {
		v := rng.Zipf(100, 1.5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 100)
		if v < 10 {
			low++
		}
	}
	assert.Greater(t, low, 500)
	assert.Equal(t, 0, rng.Zipf(1, 1.0))
}

func TestTradingMinutes(t *testing.T) {
	start := time.Date(2024, 3, 1, 19, 58, 30, 0, time.UTC)

	ts := TradingMinutes(start, 4)
	require.Len(t, ts, 4)

	want := []time.Time{
		time.Date(2024, 3, 1, 19, 58, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 19, 59, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 7, 1, 0, 0, time.UTC),
	}
	for i, w := range want {
		assert.Equal(t, uint32(w.Unix()), ts[i], "index %d", i)
	}

	early := TradingMinutes(time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC), 1)
	assert.Equal(t, uint32(time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC).Unix()), early[0])
}

func TestFirstUnordered(t *testing.T) {
	assert.Equal(t, -1, FirstUnordered([]int{}))
	assert.Equal(t, -1, FirstUnordered([]int{1, 2, 3}))
	assert.Equal(t, 2, FirstUnordered([]int{1, 2, 2}))
	assert.Equal(t, 1, FirstUnordered([]float64{3, 1}))
}
