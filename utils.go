package shiftmap

import (
	"math/bits"
	"unsafe"
)

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}

// Estimates capacity (number of slots) from the given memory size in bytes.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	var (
		k K
		v V
	)

	entrySize := unsafe.Sizeof(k) + unsafe.Sizeof(v)
	if entrySize == 0 {
		return 0
	}

	return int(size / entrySize)
}
