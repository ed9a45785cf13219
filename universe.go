package shiftmap

import "math/bits"

// Universe is a fixed, ordered key domain shared by the universe-bound
// containers. It pairs the caller's key slice with an ordinal index so that
// a key's position doubles as its storage slot. One Universe may back any
// number of containers; building it once amortizes the index allocation.
type Universe[K comparable] struct {
	keys    []K
	ordinal Map[K, int]
}

// NewUniverse builds a universe from the given ordered keys. The slice is
// stored by reference and must not change afterwards. Panics on duplicate
// keys: a universe is a key domain, so duplicates are a caller bug.
func NewUniverse[K comparable](keys []K) *Universe[K] {
	u := &Universe[K]{keys: keys}
	u.ordinal.t.init(len(keys))

	for i, k := range keys {
		if !u.ordinal.Put(k, i) {
			panic("shiftmap: duplicate key in universe")
		}
	}

	return u
}

func (u *Universe[K]) Len() int {
	return len(u.keys)
}

// At returns the key with ordinal i. Panics if i is out of range.
func (u *Universe[K]) At(i int) K {
	return u.keys[i]
}

// Ordinal returns the position of key in the universe.
func (u *Universe[K]) Ordinal(key K) (int, bool) {
	return u.ordinal.Get(key)
}

// UniverseMap is the degenerate fast path of the engine: keys come from a
// fixed universe and a key's ordinal is its slot, so there is no hashing, no
// probing, no resizing and no deletion repair. Membership lives in a word
// bitset. Iteration follows universe order.
type UniverseMap[K comparable, V any] struct {
	u      *Universe[K]
	words  []uint64
	values []V
	size   int
}

func NewUniverseMap[K comparable, V any](u *Universe[K]) *UniverseMap[K, V] {
	return &UniverseMap[K, V]{
		u:      u,
		words:  make([]uint64, (u.Len()+63)/64),
		values: make([]V, u.Len()),
	}
}

func (um *UniverseMap[K, V]) Universe() *Universe[K] {
	return um.u
}

func (um *UniverseMap[K, V]) Get(key K) (V, bool) {
	i, ok := um.u.Ordinal(key)
	if !ok || !um.bit(i) {
		var empty V
		return empty, false
	}

	return um.values[i], true
}

func (um *UniverseMap[K, V]) Has(key K) bool {
	i, ok := um.u.Ordinal(key)

	return ok && um.bit(i)
}

// Set inserts or updates key. Reports whether the key was newly inserted;
// keys outside the universe fail with ErrKeyNotInUniverse.
func (um *UniverseMap[K, V]) Set(key K, value V) (bool, error) {
	i, ok := um.u.Ordinal(key)
	if !ok {
		return false, ErrKeyNotInUniverse
	}

	isNew := !um.bit(i)
	if isNew {
		um.words[i>>6] |= 1 << (i & 63)
		um.size++
	}
	um.values[i] = value

	return isNew, nil
}

// Put inserts key only if absent. Same domain contract as Set.
func (um *UniverseMap[K, V]) Put(key K, value V) (bool, error) {
	i, ok := um.u.Ordinal(key)
	if !ok {
		return false, ErrKeyNotInUniverse
	}

	if um.bit(i) {
		return false, nil
	}

	um.words[i>>6] |= 1 << (i & 63)
	um.values[i] = value
	um.size++

	return true, nil
}

// Delete removes key. Removing an absent (but in-universe) key is a no-op
// reporting false; keys outside the universe fail with ErrKeyNotInUniverse.
func (um *UniverseMap[K, V]) Delete(key K) (bool, error) {
	i, ok := um.u.Ordinal(key)
	if !ok {
		return false, ErrKeyNotInUniverse
	}

	if !um.bit(i) {
		return false, nil
	}

	um.words[i>>6] &^= 1 << (i & 63)
	um.size--

	var empty V
	um.values[i] = empty

	return true, nil
}

func (um *UniverseMap[K, V]) Len() int {
	return um.size
}

// Clear drops every entry, keeping the bound universe.
func (um *UniverseMap[K, V]) Clear() {
	clear(um.words)
	clear(um.values)
	um.size = 0
}

// ClearToUniverse drops every entry and rebinds the container to a new key
// domain, resizing the backing storage to fit it.
func (um *UniverseMap[K, V]) ClearToUniverse(u *Universe[K]) {
	um.u = u
	um.words = make([]uint64, (u.Len()+63)/64)
	um.values = make([]V, u.Len())
	um.size = 0
}

// Keys returns the live keys in universe order.
func (um *UniverseMap[K, V]) Keys() []K {
	keys := make([]K, 0, um.size)
	for i := nextBit(um.words, 0); i >= 0; i = nextBit(um.words, i+1) {
		keys = append(keys, um.u.At(i))
	}

	return keys
}

// Iter returns a cursor in universe order.
func (um *UniverseMap[K, V]) Iter() *UniverseMapIter[K, V] {
	return &UniverseMapIter[K, V]{um: um, next: 0}
}

type UniverseMapIter[K comparable, V any] struct {
	um *UniverseMap[K, V]

	next      int
	cur       int
	canRemove bool
}

func (it *UniverseMapIter[K, V]) Next() bool {
	it.canRemove = false

	i := nextBit(it.um.words, it.next)
	if i < 0 {
		return false
	}

	it.cur = i
	it.next = i + 1
	it.canRemove = true

	return true
}

func (it *UniverseMapIter[K, V]) Key() K {
	return it.um.u.At(it.cur)
}

func (it *UniverseMapIter[K, V]) Value() V {
	return it.um.values[it.cur]
}

func (it *UniverseMapIter[K, V]) Remove() {
	if !it.canRemove {
		panic("shiftmap: Remove without a preceding Next")
	}
	it.canRemove = false

	it.um.words[it.cur>>6] &^= 1 << (it.cur & 63)
	it.um.size--

	var empty V
	it.um.values[it.cur] = empty
}

func (um *UniverseMap[K, V]) bit(i int) bool {
	return um.words[i>>6]&(1<<(i&63)) != 0
}

// UniverseSet is the set form of UniverseMap: a bitset over a fixed key
// domain.
type UniverseSet[K comparable] struct {
	u     *Universe[K]
	words []uint64
	size  int
}

func NewUniverseSet[K comparable](u *Universe[K]) *UniverseSet[K] {
	return &UniverseSet[K]{u: u, words: make([]uint64, (u.Len()+63)/64)}
}

func (us *UniverseSet[K]) Universe() *Universe[K] {
	return us.u
}

func (us *UniverseSet[K]) Has(key K) bool {
	i, ok := us.u.Ordinal(key)

	return ok && us.words[i>>6]&(1<<(i&63)) != 0
}

// Put adds key. Reports whether the key was newly added; keys outside the
// universe fail with ErrKeyNotInUniverse.
func (us *UniverseSet[K]) Put(key K) (bool, error) {
	i, ok := us.u.Ordinal(key)
	if !ok {
		return false, ErrKeyNotInUniverse
	}

	if us.words[i>>6]&(1<<(i&63)) != 0 {
		return false, nil
	}

	us.words[i>>6] |= 1 << (i & 63)
	us.size++

	return true, nil
}

// Delete removes key. Same contract as UniverseMap.Delete.
func (us *UniverseSet[K]) Delete(key K) (bool, error) {
	i, ok := us.u.Ordinal(key)
	if !ok {
		return false, ErrKeyNotInUniverse
	}

	if us.words[i>>6]&(1<<(i&63)) == 0 {
		return false, nil
	}

	us.words[i>>6] &^= 1 << (i & 63)
	us.size--

	return true, nil
}

func (us *UniverseSet[K]) Len() int {
	return us.size
}

func (us *UniverseSet[K]) Clear() {
	clear(us.words)
	us.size = 0
}

func (us *UniverseSet[K]) ClearToUniverse(u *Universe[K]) {
	us.u = u
	us.words = make([]uint64, (u.Len()+63)/64)
	us.size = 0
}

// Keys returns the live keys in universe order.
func (us *UniverseSet[K]) Keys() []K {
	keys := make([]K, 0, us.size)
	for i := nextBit(us.words, 0); i >= 0; i = nextBit(us.words, i+1) {
		keys = append(keys, us.u.At(i))
	}

	return keys
}

// Iter returns a cursor in universe order satisfying Iterator[K].
func (us *UniverseSet[K]) Iter() *UniverseSetIter[K] {
	return &UniverseSetIter[K]{us: us}
}

type UniverseSetIter[K comparable] struct {
	us *UniverseSet[K]

	next      int
	cur       int
	canRemove bool
}

func (it *UniverseSetIter[K]) Next() bool {
	it.canRemove = false

	i := nextBit(it.us.words, it.next)
	if i < 0 {
		return false
	}

	it.cur = i
	it.next = i + 1
	it.canRemove = true

	return true
}

func (it *UniverseSetIter[K]) Value() K {
	return it.us.u.At(it.cur)
}

func (it *UniverseSetIter[K]) Remove() {
	if !it.canRemove {
		panic("shiftmap: Remove without a preceding Next")
	}
	it.canRemove = false

	it.us.words[it.cur>>6] &^= 1 << (it.cur & 63)
	it.us.size--
}

// nextBit returns the index of the first set bit at or after from, or -1.
func nextBit(words []uint64, from int) int {
	if from < 0 {
		from = 0
	}

	for w := from >> 6; w < len(words); w++ {
		word := words[w]
		if w == from>>6 {
			word &= ^uint64(0) << (from & 63)
		}

		if word != 0 {
			return w<<6 + bits.TrailingZeros64(word)
		}
	}

	return -1
}
