package shiftmap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Basic(t *testing.T) {
	s := NewSet[string](16)

	require.True(t, s.Put("foo"))
	require.False(t, s.Put("foo"))

	assert.True(t, s.Has("foo"))
	assert.False(t, s.Has("bar"))
	assert.Equal(t, 1, s.Len())

	require.True(t, s.Delete("foo"))
	require.False(t, s.Delete("foo"))
	assert.Equal(t, 0, s.Len())
}

func TestSet_ZeroKey(t *testing.T) {
	s := NewUint64Set(16)

	require.True(t, s.Put(0))
	require.False(t, s.Put(0))
	assert.True(t, s.Has(0))
	assert.Equal(t, 1, s.Len())

	require.True(t, s.Delete(0))
	assert.False(t, s.Has(0))
	assert.Equal(t, 0, s.Len())
}

func TestSet_GrowPreservesMembership(t *testing.T) {
	s := NewInt64Set(4)

	for i := int64(1); i <= 100; i++ {
		require.True(t, s.Put(i))
	}

	assert.Equal(t, 100, s.Len())
	for i := int64(1); i <= 100; i++ {
		require.Truef(t, s.Has(i), "lost key %d across growth", i)
	}
}

func TestSet_Keys(t *testing.T) {
	s := NewInt64Set(16)

	for i := int64(0); i < 6; i++ {
		s.Put(i)
	}

	keys := s.Keys()
	require.Len(t, keys, 6)

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5}, keys)
}

func TestSet_Clear(t *testing.T) {
	s := NewInt64Set(16)

	for i := int64(0); i < 5; i++ {
		s.Put(i)
	}

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(0))
	assert.False(t, s.Has(3))
}

func TestSet_Iter_Remove(t *testing.T) {
	s := NewInt64Set(16)

	for i := int64(0); i < 10; i++ {
		s.Put(i)
	}

	seen := map[int64]int{}
	for it := s.Iter(); it.Next(); {
		seen[it.Value()]++
		if it.Value() >= 5 {
			it.Remove()
		}
	}

	require.Len(t, seen, 10)
	for k, n := range seen {
		require.Equalf(t, 1, n, "key %d yielded %d times", k, n)
	}

	assert.Equal(t, 5, s.Len())
	requireProbeInvariant(t, &s.t)
}
