package shiftmap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort_Basic(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{1}, []int{1}},
		{"sorted", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}},
		{"reversed", []int{4, 3, 2, 1}, []int{1, 2, 3, 4}},
		{"duplicates", []int{2, 1, 2, 1, 2}, []int{1, 1, 2, 2, 2}},
		{"all equal", []int{7, 7, 7}, []int{7, 7, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := slices.Clone(tt.input)
			Sort(s, 0, len(s), func(a, b int) int { return a - b })

			require.Equal(t, tt.want, s)
		})
	}
}

func TestSort_Range(t *testing.T) {
	s := []int{9, 8, 5, 3, 1, 7, 0}

	// Only [2, 5) is sorted; the rest must not move.
	Sort(s, 2, 5, func(a, b int) int { return a - b })

	assert.Equal(t, []int{9, 8, 1, 3, 5, 7, 0}, s)
}

func TestSort_Stability(t *testing.T) {
	type pair struct {
		key int
		seq int
	}

	rng := rand.New(rand.NewSource(5))
	s := make([]pair, 500)
	for i := range s {
		// Few distinct keys, so equal runs are long.
		s[i] = pair{key: rng.Intn(10), seq: i}
	}

	Sort(s, 0, len(s), func(a, b pair) int { return a.key - b.key })

	for i := 1; i < len(s); i++ {
		require.LessOrEqual(t, s[i-1].key, s[i].key)
		if s[i-1].key == s[i].key {
			require.Lessf(t, s[i-1].seq, s[i].seq,
				"equal keys reordered at %d", i)
		}
	}
}

func TestSort_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for _, n := range []int{2, 3, 19, 20, 21, 100, 1000} {
		s := make([]int, n)
		for i := range s {
			s[i] = rng.Intn(n)
		}

		want := slices.Clone(s)
		slices.SortStableFunc(want, func(a, b int) int { return a - b })

		Sort(s, 0, len(s), func(a, b int) int { return a - b })

		require.Equalf(t, want, s, "mismatch at n=%d", n)
	}
}

func TestSortOrdered(t *testing.T) {
	s := []string{"pear", "apple", "fig"}

	SortOrdered(s, 0, len(s))

	assert.Equal(t, []string{"apple", "fig", "pear"}, s)
}
