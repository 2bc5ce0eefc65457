package testutil

import (
	"cmp"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Trading session bounds used by TradingMinutes, as offsets from midnight UTC.
const (
	SessionOpen  = 7 * time.Hour
	SessionClose = 20 * time.Hour
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Keys returns n pseudo-random keys in [0, limit). Duplicates are possible.
func (r *RNG) Keys(n int, limit uint32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(r.rand.Int63n(int64(limit)))
	}
	return out
}

// UniqueKeys returns n distinct pseudo-random keys in [0, limit), in random
// order. It panics if limit < n.
func (r *RNG) UniqueKeys(n int, limit uint32) []uint32 {
	if uint64(limit) < uint64(n) {
		panic("testutil: limit smaller than n")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[uint32]struct{}, n)
	out := make([]uint32, 0, n)
	for len(out) < n {
		k := uint32(r.rand.Int63n(int64(limit)))
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Shuffle permutes keys in place.
func (r *RNG) Shuffle(keys []uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
}

// Pick returns n keys drawn with replacement from keys.
func (r *RNG) Pick(keys []uint32, n int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, n)
	for i := range out {
		out[i] = keys[r.rand.Intn(len(keys))]
	}
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// s=1.0 gives standard Zipf, larger values skew harder toward 0.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// TradingMinutes returns n ascending unix timestamps (seconds), one per
// minute, restricted to the trading session of each day. Generation starts at
// start truncated to the minute; minutes before SessionOpen or at or after
// SessionClose are skipped.
func TradingMinutes(start time.Time, n int) []uint32 {
	out := make([]uint32, 0, n)

	t := start.UTC().Truncate(time.Minute)
	for len(out) < n {
		day := t.Truncate(24 * time.Hour)
		offset := t.Sub(day)

		switch {
		case offset < SessionOpen:
			t = day.Add(SessionOpen)
		case offset >= SessionClose:
			t = day.Add(24 * time.Hour).Add(SessionOpen)
		default:
			out = append(out, uint32(t.Unix()))
			t = t.Add(time.Minute)
		}
	}
	return out
}

// FirstUnordered returns the index of the first key that is not strictly
// greater than its predecessor, or -1 if keys is strictly ascending.
func FirstUnordered[K cmp.Ordered](keys []K) int {
	for i := 1; i < len(keys); i++ {
		if cmp.Compare(keys[i-1], keys[i]) >= 0 {
			return i
		}
	}
	return -1
}
