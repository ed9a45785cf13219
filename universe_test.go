package shiftmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weekday string

var weekdays = []weekday{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

func TestUniverse(t *testing.T) {
	u := NewUniverse(weekdays)

	require.Equal(t, 7, u.Len())
	assert.Equal(t, weekday("wed"), u.At(2))

	i, ok := u.Ordinal("fri")
	require.True(t, ok)
	assert.Equal(t, 4, i)

	_, ok = u.Ordinal("holiday")
	assert.False(t, ok)
}

func TestUniverse_Duplicates(t *testing.T) {
	assert.Panics(t, func() {
		NewUniverse([]weekday{"mon", "tue", "mon"})
	})
}

func TestUniverseMap_Basic(t *testing.T) {
	u := NewUniverse(weekdays)
	um := NewUniverseMap[weekday, string](u)

	isNew, err := um.Set("tue", "gym")
	require.NoError(t, err)
	require.True(t, isNew)

	isNew, err = um.Set("tue", "rest")
	require.NoError(t, err)
	require.False(t, isNew)

	v, ok := um.Get("tue")
	require.True(t, ok)
	assert.Equal(t, "rest", v)

	_, ok = um.Get("mon")
	assert.False(t, ok)
	assert.Equal(t, 1, um.Len())

	removed, err := um.Delete("tue")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = um.Delete("tue")
	require.NoError(t, err)
	require.False(t, removed)
	assert.Equal(t, 0, um.Len())
}

func TestUniverseMap_DomainViolation(t *testing.T) {
	um := NewUniverseMap[weekday, string](NewUniverse(weekdays))

	_, err := um.Set("holiday", "x")
	assert.ErrorIs(t, err, ErrKeyNotInUniverse)

	_, err = um.Put("holiday", "x")
	assert.ErrorIs(t, err, ErrKeyNotInUniverse)

	_, err = um.Delete("holiday")
	assert.ErrorIs(t, err, ErrKeyNotInUniverse)

	// Reads on out-of-universe keys are harmless misses.
	assert.False(t, um.Has("holiday"))
	_, ok := um.Get("holiday")
	assert.False(t, ok)

	assert.Equal(t, 0, um.Len())
}

func TestUniverseMap_IterationOrder(t *testing.T) {
	um := NewUniverseMap[weekday, int](NewUniverse(weekdays))

	// Inserted out of order; iteration follows universe order regardless.
	for _, d := range []weekday{"sun", "mon", "fri"} {
		_, err := um.Set(d, 1)
		require.NoError(t, err)
	}

	assert.Equal(t, []weekday{"mon", "fri", "sun"}, um.Keys())

	var got []weekday
	for it := um.Iter(); it.Next(); {
		got = append(got, it.Key())
	}
	assert.Equal(t, []weekday{"mon", "fri", "sun"}, got)
}

func TestUniverseMap_Iter_Remove(t *testing.T) {
	um := NewUniverseMap[weekday, int](NewUniverse(weekdays))

	for i, d := range weekdays {
		_, err := um.Set(d, i)
		require.NoError(t, err)
	}

	for it := um.Iter(); it.Next(); {
		if it.Value()%2 == 0 {
			it.Remove()
		}
	}

	assert.Equal(t, []weekday{"tue", "thu", "sat"}, um.Keys())
	assert.Equal(t, 3, um.Len())
}

func TestUniverseMap_SharedUniverse(t *testing.T) {
	// One universe backing several containers, none of them re-indexing.
	u := NewUniverse(weekdays)

	a := NewUniverseMap[weekday, int](u)
	b := NewUniverseSet[weekday](u)

	_, err := a.Set("mon", 1)
	require.NoError(t, err)
	_, err = b.Put("tue")
	require.NoError(t, err)

	assert.True(t, a.Has("mon"))
	assert.False(t, a.Has("tue"))
	assert.True(t, b.Has("tue"))
	assert.Same(t, u, a.Universe())
	assert.Same(t, u, b.Universe())
}

func TestUniverseMap_ClearToUniverse(t *testing.T) {
	um := NewUniverseMap[weekday, int](NewUniverse(weekdays))

	_, err := um.Set("mon", 1)
	require.NoError(t, err)

	workdays := NewUniverse([]weekday{"mon", "tue", "wed", "thu", "fri"})
	um.ClearToUniverse(workdays)

	assert.Equal(t, 0, um.Len())
	assert.False(t, um.Has("mon"))

	// The old domain no longer applies.
	_, err = um.Set("sat", 1)
	assert.ErrorIs(t, err, ErrKeyNotInUniverse)

	isNew, err := um.Set("fri", 1)
	require.NoError(t, err)
	assert.True(t, isNew)
}

func TestUniverseSet_Basic(t *testing.T) {
	us := NewUniverseSet(NewUniverse(weekdays))

	isNew, err := us.Put("wed")
	require.NoError(t, err)
	require.True(t, isNew)

	isNew, err = us.Put("wed")
	require.NoError(t, err)
	require.False(t, isNew)

	assert.True(t, us.Has("wed"))
	assert.Equal(t, 1, us.Len())

	_, err = us.Put("holiday")
	assert.ErrorIs(t, err, ErrKeyNotInUniverse)

	removed, err := us.Delete("wed")
	require.NoError(t, err)
	require.True(t, removed)
	assert.Equal(t, 0, us.Len())
}

func TestUniverseSet_LargeUniverse(t *testing.T) {
	// More than one bitset word.
	keys := make([]int, 200)
	for i := range keys {
		keys[i] = i
	}

	us := NewUniverseSet(NewUniverse(keys))

	for i := 0; i < 200; i += 3 {
		_, err := us.Put(i)
		require.NoError(t, err)
	}

	want := 0
	for i := 0; i < 200; i += 3 {
		want++
		require.True(t, us.Has(i))
	}
	assert.Equal(t, want, us.Len())

	got := us.Keys()
	require.Len(t, got, want)
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1], got[i], "keys must follow universe order")
	}
}
