package okm

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/okm/testutil"
)

func TestAlgorithmString(t *testing.T) {
	assert.Equal(t, "bisection", Bisection.String())
	assert.Equal(t, "interpolation", Interpolation.String())
	assert.Equal(t, "Algorithm(7)", Algorithm(7).String())
}

// refLowerBound is the obvious linear scan.
func refLowerBound(keys []int64, key int64) int {
	for i, k := range keys {
		if k >= key {
			return i
		}
	}
	return len(keys)
}

func TestStrategiesAgree(t *testing.T) {
	rng := testutil.NewRNG(4711)

	shapes := map[string]func(n int) []int64{
		"uniform": func(n int) []int64 {
			keys := make([]int64, 0, n)
			for _, k := range rng.UniqueKeys(n, 1<<24) {
				keys = append(keys, int64(k)-1<<23)
			}
			slices.Sort(keys)
			return keys
		},
		"clustered": func(n int) []int64 {
			keys := make([]int64, 0, n)
			for i := range n {
				if i < n-2 {
					keys = append(keys, int64(i))
				}
			}
			return append(keys, 1<<40, 1<<41)
		},
		"zipf gaps": func(n int) []int64 {
			// Mostly dense runs broken by rare, very large jumps.
			keys := make([]int64, n)
			var k int64
			for i := range keys {
				k += int64(1) << rng.Zipf(40, 1.0)
				keys[i] = k
			}
			return keys
		},
		"even": func(n int) []int64 {
			keys := make([]int64, n)
			for i := range keys {
				keys[i] = int64(i) * 60
			}
			return keys
		},
	}

	for name, gen := range shapes {
		t.Run(name, func(t *testing.T) {
			keys := gen(1000)
			bis := New[int64, int](WithAlgorithm(Bisection))
			ipo := New[int64, int](WithAlgorithm(Interpolation))
			for i, k := range keys {
				bis.Insert(k, i)
				ipo.Insert(k, i)
			}
			require.Equal(t, len(keys), bis.Len())

			probes := make([]int64, 0, 3000)
			for _, k := range keys {
				probes = append(probes, k-1, k, k+1)
			}
			for _, p := range probes {
				want := refLowerBound(keys, p)
				require.Equal(t, want, bis.LowerBound(p).Pos(), "bisection lower bound %d", p)
				require.Equal(t, want, ipo.LowerBound(p).Pos(), "interpolation lower bound %d", p)
				require.Equal(t, bis.UpperBound(p).Pos(), ipo.UpperBound(p).Pos(), "upper bound %d", p)
				require.Equal(t, bis.Find(p).Pos(), ipo.Find(p).Pos(), "find %d", p)
			}
		})
	}
}

func TestSearchFloatKeys(t *testing.T) {
	for _, algo := range []Algorithm{Bisection, Interpolation} {
		t.Run(algo.String(), func(t *testing.T) {
			m := New[float64, string](WithAlgorithm(algo))
			m.Insert(-1.5, "a")
			m.Insert(0.25, "b")
			m.Insert(0.5, "c")
			m.Insert(3.75, "d")

			assert.Equal(t, "c", m.Get(0.5))
			assert.Equal(t, 2, m.LowerBound(0.3).Pos())
			assert.Equal(t, 1, m.UpperBound(-1.5).Pos())
			assert.False(t, m.Contains(0.3))
		})
	}
}

func TestSearchUnsignedExtremes(t *testing.T) {
	m := New[uint64, int](WithAlgorithm(Interpolation))
	keys := []uint64{0, 1, 2, 1 << 63, 1<<64 - 2, 1<<64 - 1}
	for i, k := range keys {
		m.Insert(k, i)
	}

	for i, k := range keys {
		assert.Equal(t, i, m.Find(k).Pos())
	}
	assert.Equal(t, 3, m.LowerBound(3).Pos())
}
