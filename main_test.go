package shiftmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// collide returns a hash function placing every key in the same ideal slot.
func collide[K comparable](K) uint64 { return 0 }

// requireProbeInvariant asserts that every live key is reachable from its
// ideal slot without crossing an empty slot.
func requireProbeInvariant[K comparable, V any](t *testing.T, tt *table[K, V]) {
	t.Helper()

	mask := int(tt.mask)
	for _, k := range tt.keys {
		if k == tt.zero {
			continue
		}

		for j := tt.place(tt.hashFunc(k)); ; j = (j + 1) & mask {
			if tt.keys[j] == k {
				break
			}

			require.NotEqualf(t, tt.zero, tt.keys[j],
				"key %v is cut off from its probe path by an empty slot", k)
		}
	}
}
