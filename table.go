package shiftmap

import (
	"hash/maphash"
	"math/bits"
)

const (
	minCapacity = 4

	defaultLoadFactor = 0.75
)

// table is the open-addressing engine shared by every map and set variant.
//
// Keys and values live in two parallel power-of-two arrays. A slot is empty
// when it holds the zero value of K, so the engine never stores a zero-valued
// key itself; wrappers keep such keys in a single out-of-band slot. Collisions
// resolve by linear probing, and removal closes gaps by shifting cluster
// entries backward. There are no tombstones and no per-slot metadata.
type table[K comparable, V any] struct {
	keys   []K
	values []V

	size       int
	mask       uint64
	shift      uint
	limit      int
	loadFactor float64

	hashFunc HashFunc[K]

	zero    K
	missing V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override default load factor (0 < f <= 1). Higher values trade probe
// length for memory.
func WithLoadFactor[K comparable, V any](f float64) Option[K, V] {
	if f <= 0 || f > 1 {
		panic("shiftmap: load factor must be in (0, 1]")
	}

	return func(t *table[K, V]) {
		t.loadFactor = f
	}
}

// Set the value reported for absent keys by the GetOrDefault accessors.
func WithDefault[K comparable, V any](v V) Option[K, V] {
	return func(t *table[K, V]) {
		t.missing = v
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	t.loadFactor = defaultLoadFactor

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	// Zero capacity defers allocation to the first insert.
	if capacity > 0 {
		t.rehash(int(NextPowerOf2(uint32(max(capacity, minCapacity)))))
	}
}

// place maps a hash code to a slot via Fibonacci scrambling. The shift is
// recomputed at every rehash, so a key set that clustered at one capacity
// spreads differently at the next.
func (t *table[K, V]) place(h uint64) int {
	return int((h * fibMult) >> t.shift)
}

// locate returns the slot holding key or, when the key is absent, the bitwise
// complement of the first empty slot on its probe path. The caller must not
// pass the zero key and the table must be allocated.
func (t *table[K, V]) locate(key K) int {
	mask := int(t.mask)

	for i := t.place(t.hashFunc(key)); ; i = (i + 1) & mask {
		switch k := t.keys[i]; {
		case k == t.zero:
			return ^i
		case k == key:
			return i
		}
	}
}

func (t *table[K, V]) get(key K) (V, bool) {
	if len(t.keys) == 0 {
		return t.missing, false
	}

	if i := t.locate(key); i >= 0 {
		return t.values[i], true
	}

	return t.missing, false
}

func (t *table[K, V]) has(key K) bool {
	return len(t.keys) != 0 && t.locate(key) >= 0
}

// set inserts or updates key. Reports whether the key was newly inserted.
func (t *table[K, V]) set(key K, value V) bool {
	return t.insert(key, value, true)
}

// put inserts key only if absent. Reports whether the key was inserted.
func (t *table[K, V]) put(key K, value V) bool {
	return t.insert(key, value, false)
}

func (t *table[K, V]) insert(key K, value V, overwrite bool) bool {
	if len(t.keys) == 0 {
		t.grow()
	}

	i := t.locate(key)
	if i >= 0 {
		if overwrite {
			t.values[i] = value
		}

		return false
	}

	// Grow before placing, so that size never exceeds capacity*loadFactor
	// once this returns. The free slot must be located again: every entry
	// moves during a rehash.
	if t.size >= t.limit {
		t.grow()
		i = t.locate(key)
	}

	i = ^i
	t.keys[i] = key
	t.values[i] = value
	t.size++

	return true
}

func (t *table[K, V]) del(key K) bool {
	if len(t.keys) == 0 {
		return false
	}

	i := t.locate(key)
	if i < 0 {
		return false
	}

	t.shiftOut(i, nil)

	return true
}

// shiftOut empties slot i. Entries after it in the cluster shift backward
// whenever their ideal slot does not lie inside (i, j], so every live key
// stays reachable from its ideal slot without crossing an empty slot.
// moved, when non-nil, observes each displaced entry.
func (t *table[K, V]) shiftOut(i int, moved func(key K, src, dst int)) {
	mask := int(t.mask)

	for j := (i + 1) & mask; t.keys[j] != t.zero; j = (j + 1) & mask {
		ideal := t.place(t.hashFunc(t.keys[j]))
		if (j-ideal)&mask < (j-i)&mask {
			// The entry at j sits between its ideal slot and j for a reason;
			// the gap at i is not on its probe path.
			continue
		}

		if moved != nil {
			moved(t.keys[j], j, i)
		}

		t.keys[i] = t.keys[j]
		t.values[i] = t.values[j]
		i = j
	}

	t.keys[i] = t.zero

	var empty V
	t.values[i] = empty

	t.size--
}

func (t *table[K, V]) grow() {
	t.rehash(max(2*len(t.keys), minCapacity))
}

// rehash rebuilds the table at the given power-of-two capacity, re-placing
// every live key. Entries generally land in different slots afterwards, so
// nothing outside the engine may hold on to slot indices across a rehash.
func (t *table[K, V]) rehash(capacity int) {
	oldKeys, oldValues := t.keys, t.values

	t.keys = make([]K, capacity)
	t.values = make([]V, capacity)
	t.mask = uint64(capacity - 1)
	t.shift = uint(64 - bits.Len64(t.mask))
	t.limit = max(min(int(float64(capacity)*t.loadFactor), capacity-1), 1)

	mask := capacity - 1
	for slot, k := range oldKeys {
		if k == t.zero {
			continue
		}

		// No equality checks needed: keys are known distinct.
		i := t.place(t.hashFunc(k))
		for t.keys[i] != t.zero {
			i = (i + 1) & mask
		}

		t.keys[i] = k
		t.values[i] = oldValues[slot]
	}
}

func (t *table[K, V]) clear() {
	clear(t.keys)
	clear(t.values)
	t.size = 0
}

func (t *table[K, V]) capacity() int {
	return len(t.keys)
}
