package shiftmap

import "hash/maphash"

type HashFunc[K comparable] func(K) uint64

// Fibonacci multiplier (2^64 divided by the golden ratio). Hash codes are
// multiplied by it and the high bits are kept, so keys whose hashes differ
// only in a few low or high bits still spread across the table.
const fibMult = 0x9E3779B97F4A7C15

func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// Mix64 is the splitmix64 finalizer. Integer-keyed variants run their key's
// bit pattern through it before placement, since consecutive integers would
// otherwise form one long probe cluster.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31

	return x
}
