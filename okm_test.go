package okm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)

// scenario builds the map {5, 10, 15, 20} by inserting 10, 20, 5, 15.
func scenario(t *testing.T, opts ...Option) *Map[int, string] {
	t.Helper()

	m := New[int, string](opts...)
	m.Insert(10, "ten")
	m.Insert(20, "twenty")
	m.Insert(5, "five")
	m.Insert(15, "fifteen")
	require.NoError(t, m.Validate())
	return m
}

func TestNew(t *testing.T) {
	m := New[uint32, float64]()

	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, DefaultCapacity, m.Cap())
	assert.Equal(t, Bisection, m.Algorithm())
	assert.True(t, m.Begin().Equal(m.End()))

	small := New[uint32, float64](WithCapacity(-3))
	assert.Equal(t, 0, small.Cap())
	small.Insert(1, 1)
	assert.Equal(t, 1, small.Len())
}

func TestInsertKeepsOrder(t *testing.T) {
	m := scenario(t)

	assert.Equal(t, []int{5, 10, 15, 20}, m.Keys())
	assert.Equal(t, []string{"five", "ten", "fifteen", "twenty"}, m.Values())
	assert.Equal(t, 5, m.FirstKey())
	assert.Equal(t, 20, m.LastKey())

	first, last := m.Interval()
	assert.Equal(t, 5, first)
	assert.Equal(t, 20, last)
}

func TestBounds(t *testing.T) {
	for _, algo := range []Algorithm{Bisection, Interpolation} {
		t.Run(algo.String(), func(t *testing.T) {
			m := scenario(t, WithAlgorithm(algo))

			tests := []struct {
				key   int
				lower int
				upper int
				find  int
			}{
				{key: 1, lower: 0, upper: 0, find: 4},
				{key: 5, lower: 0, upper: 1, find: 0},
				{key: 7, lower: 1, upper: 1, find: 4},
				{key: 10, lower: 1, upper: 2, find: 1},
				{key: 12, lower: 2, upper: 2, find: 4},
				{key: 15, lower: 2, upper: 3, find: 2},
				{key: 20, lower: 3, upper: 4, find: 3},
				{key: 25, lower: 4, upper: 4, find: 4},
			}
			for _, tt := range tests {
				assert.Equal(t, tt.lower, m.LowerBound(tt.key).Pos(), "lower bound of %d", tt.key)
				assert.Equal(t, tt.upper, m.UpperBound(tt.key).Pos(), "upper bound of %d", tt.key)
				assert.Equal(t, tt.find, m.Find(tt.key).Pos(), "find %d", tt.key)
			}

			assert.True(t, m.Find(7).IsEnd())
			assert.Equal(t, 15, m.LowerBound(12).Key())
		})
	}
}

func TestBoundsEmpty(t *testing.T) {
	m := New[int, int]()

	assert.True(t, m.LowerBound(3).IsEnd())
	assert.True(t, m.UpperBound(3).IsEnd())
	assert.True(t, m.Find(3).IsEnd())
	assert.False(t, m.Contains(0))
}

func TestLookups(t *testing.T) {
	m := scenario(t)

	assert.Equal(t, "fifteen", m.Get(15))
	assert.Equal(t, "", m.Get(7))
	assert.Equal(t, 4, m.Len(), "Get must not insert")

	v, ok := m.Lookup(20)
	assert.True(t, ok)
	assert.Equal(t, "twenty", v)

	_, ok = m.Lookup(21)
	assert.False(t, ok)

	assert.True(t, m.Contains(5))
	assert.False(t, m.Contains(6))

	assert.Equal(t, "five", m.First())
	assert.Equal(t, "twenty", m.Last())
}

func TestFirstLastEmpty(t *testing.T) {
	m := New[int, string]()

	assert.Equal(t, "", m.First())
	assert.Equal(t, "", m.Last())
	assert.Equal(t, 0, m.FirstKey())
	assert.Equal(t, 0, m.LastKey())
}

func TestValueNearPos(t *testing.T) {
	m := scenario(t)

	tests := []struct {
		name string
		key  int
		hint int
		want string
		ok   bool
	}{
		{name: "exact hint", key: 10, hint: 1, want: "ten", ok: true},
		{name: "walk forward", key: 20, hint: 0, want: "twenty", ok: true},
		{name: "walk backward", key: 5, hint: 3, want: "five", ok: true},
		{name: "overshoot forward", key: 12, hint: 0, ok: false},
		{name: "overshoot backward", key: 12, hint: 3, ok: false},
		{name: "past the end", key: 30, hint: 2, ok: false},
		{name: "before the start", key: 1, hint: 2, ok: false},
		{name: "hint out of range", key: 10, hint: 9, ok: false},
		{name: "negative hint", key: 10, hint: -1, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := m.LookupNear(tt.key, tt.hint)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.want, m.ValueNearPos(tt.key, tt.hint))
		})
	}
}

func TestRef(t *testing.T) {
	m := New[int, int]()

	*m.Ref(10)++
	*m.Ref(10)++
	*m.Ref(5) = 50
	*m.Ref(20) = 200
	*m.Ref(15) = 150

	assert.Equal(t, []int{5, 10, 15, 20}, m.Keys())
	assert.Equal(t, []int{50, 2, 150, 200}, m.Values())
	require.NoError(t, m.Validate())
}

func TestRefZeroKeyOnEmpty(t *testing.T) {
	m := New[int, int]()

	// The cached last key of an empty map is 0; Ref must still insert.
	*m.Ref(0) = 7
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 7, m.Get(0))
}

func TestIterator(t *testing.T) {
	m := scenario(t)

	var keys []int
	for it := m.Begin(); !it.IsEnd(); it = it.Next() {
		require.True(t, it.Valid())
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []int{5, 10, 15, 20}, keys)

	it := m.End().Prev()
	assert.Equal(t, 20, it.Key())
	assert.Equal(t, Entry[int, string]{Key: 20, Value: "twenty"}, it.Entry())

	*it.ValuePtr() = "XX"
	assert.Equal(t, "XX", m.Last())

	assert.True(t, m.Begin().Less(m.End()))
	assert.Equal(t, 15, m.Begin().Add(2).Key())
	assert.True(t, m.At(99).IsEnd())

	end := m.End()
	assert.False(t, end.Valid())
	assert.Equal(t, 0, end.Key())
	assert.Panics(t, func() { end.Value() })

	var zero Iterator[int, string]
	assert.True(t, zero.IsEnd())
	assert.False(t, zero.Valid())
}

func TestKeysBetween(t *testing.T) {
	m := scenario(t)

	assert.Equal(t, []int{10, 15}, m.KeysBetween(6, 15))
	assert.Equal(t, []int{5, 10, 15, 20}, m.KeysBetween(0, 100))
	assert.Equal(t, []int{20}, m.KeysBetween(20, 20))
	assert.Nil(t, m.KeysBetween(11, 14))
	assert.Nil(t, m.KeysBetween(15, 10))
	assert.Nil(t, m.KeysBetween(6, 0), "zero upper bound is a real bound")
	assert.Equal(t, []int{10, 15, 20}, m.KeysBetween(6, m.LastKey()))

	signed := New[int, int]()
	for _, k := range []int{-10, -5, 0, 5} {
		signed.Insert(k, k)
	}
	assert.Equal(t, []int{-5, 0}, signed.KeysBetween(-7, 0))
}

func TestAllAndBackward(t *testing.T) {
	m := scenario(t)

	var fwd []int
	for k := range m.All() {
		fwd = append(fwd, k)
	}
	assert.Equal(t, []int{5, 10, 15, 20}, fwd)

	var bwd []string
	for _, v := range m.Backward() {
		bwd = append(bwd, v)
		if len(bwd) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"twenty", "fifteen"}, bwd)
}

func TestClone(t *testing.T) {
	m := scenario(t, WithCapacity(8))

	c := m.Clone()
	assert.Equal(t, m.Keys(), c.Keys())
	assert.Equal(t, m.Cap(), c.Cap())

	c.Insert(30, "thirty")
	*c.Ref(5) = "changed"
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, "five", m.First())
}

func TestValidate(t *testing.T) {
	v := ViewOf([]Entry[int, int]{{Key: 1}, {Key: 3}, {Key: 2}})

	err := v.Validate()
	require.Error(t, err)

	var ov *ErrOrderViolation
	require.ErrorAs(t, err, &ov)
	assert.Equal(t, 2, ov.Pos)
	assert.Equal(t, 3, ov.Prev)
	assert.Equal(t, 2, ov.Next)
	assert.Contains(t, err.Error(), "order violation at 2")

	dup := ViewOf([]Entry[int, int]{{Key: 1}, {Key: 1}})
	assert.Error(t, dup.Validate())

	assert.NoError(t, ViewOf[int, int](nil).Validate())
}
