package okm

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type padded struct {
	A uint8
	B uint64
}

func TestBytewiseComparable(t *testing.T) {
	assert.True(t, bytewiseComparable(reflect.TypeFor[Entry[uint64, int64]]()))
	assert.True(t, bytewiseComparable(reflect.TypeFor[Entry[uint32, uint32]]()))
	assert.False(t, bytewiseComparable(reflect.TypeFor[Entry[uint64, float64]]()), "floats")
	assert.False(t, bytewiseComparable(reflect.TypeFor[Entry[uint32, uint64]]()), "padding")
	assert.False(t, bytewiseComparable(reflect.TypeFor[padded]()))
	assert.False(t, bytewiseComparable(reflect.TypeFor[Entry[int, string]]()))
}

func TestEqual(t *testing.T) {
	build := func(keys ...int64) *Map[int64, int64] {
		m := New[int64, int64]()
		for _, k := range keys {
			m.Insert(k, k*10)
		}
		return m
	}

	a := build(1, 2, 3)
	b := build(1, 2, 3)
	assert.True(t, Equal[int64, int64](a, b))
	assert.True(t, Equal[int64, int64](a, a))

	b.Insert(2, 0)
	assert.False(t, Equal[int64, int64](a, b), "value differs")

	assert.False(t, Equal[int64, int64](a, build(1, 2)), "length differs")
	assert.False(t, Equal[int64, int64](a, build(0, 2, 3)), "first key differs")
	assert.False(t, Equal[int64, int64](a, build(1, 5, 3)), "inner key differs")
	assert.True(t, Equal[int64, int64](build(), New[int64, int64]()))

	assert.True(t, Equal[int64, int64](a, ViewOf(a.Entries())))
}

func TestEqualSlowPath(t *testing.T) {
	a := New[uint32, float64]()
	b := New[uint32, float64]()
	for k := range uint32(10) {
		a.Insert(k, float64(k))
		b.Insert(k, float64(k))
	}
	assert.True(t, Equal[uint32, float64](a, b))

	// +0 and -0 compare equal even though their bits differ.
	a.Insert(3, 0)
	b.Insert(3, math.Copysign(0, -1))
	assert.True(t, Equal[uint32, float64](a, b))

	b.Insert(3, math.NaN())
	assert.False(t, Equal[uint32, float64](a, b))

	s1 := New[int, string]()
	s2 := New[int, string]()
	s1.Insert(1, "x")
	s2.Insert(1, "x")
	assert.True(t, Equal[int, string](s1, s2))
	s2.Insert(1, "y")
	assert.False(t, Equal[int, string](s1, s2))
}

func TestEqualFunc(t *testing.T) {
	a := New[int, []int]()
	b := New[int, []int]()
	a.Insert(1, []int{1, 2})
	b.Insert(1, []int{1, 2})

	eq := func(x, y []int) bool { return reflect.DeepEqual(x, y) }
	assert.True(t, EqualFunc[int, []int](a, b, eq))

	b.Insert(2, nil)
	assert.False(t, EqualFunc[int, []int](a, b, eq))
}

func TestEqualMap(t *testing.T) {
	m := scenario(t)

	assert.True(t, EqualMap[int, string](m, map[int]string{5: "five", 10: "ten", 15: "fifteen", 20: "twenty"}))
	assert.False(t, EqualMap[int, string](m, map[int]string{5: "five"}))
	assert.False(t, EqualMap[int, string](m, map[int]string{5: "five", 10: "ten", 15: "fifteen", 21: "twenty"}))
	assert.False(t, EqualMap[int, string](m, map[int]string{5: "five", 10: "TEN", 15: "fifteen", 20: "twenty"}))
}
