package shiftmap

import "slices"

// OrderedMap is a Map with a deterministic iteration order: a parallel key
// sequence maintained alongside the table. The sequence stores keys rather
// than slot indices, so it survives rehashing untouched. The table stays
// authoritative for membership; the sequence only dictates order.
type OrderedMap[K comparable, V any] struct {
	m     Map[K, V]
	order []K
}

// Returns a new ordered map. Keys iterate in insertion order unless moved
// via InsertAt or reordered via Sort.
func NewOrderedMap[K comparable, V any](capacity int, opts ...Option[K, V]) *OrderedMap[K, V] {
	var om OrderedMap[K, V]
	om.m.t.init(capacity, opts...)

	return &om
}

func (om *OrderedMap[K, V]) Get(key K) (V, bool) {
	return om.m.Get(key)
}

func (om *OrderedMap[K, V]) GetOrDefault(key K) V {
	return om.m.GetOrDefault(key)
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	return om.m.Has(key)
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.order)
}

func (om *OrderedMap[K, V]) Cap() int {
	return om.m.Cap()
}

// Set inserts or updates key, appending new keys at the end of the order.
// Updating an existing key leaves its position alone.
func (om *OrderedMap[K, V]) Set(key K, value V) bool {
	isNew := om.m.Set(key, value)
	if isNew {
		om.order = append(om.order, key)
	}

	return isNew
}

// Put inserts key at the end of the order only if absent.
func (om *OrderedMap[K, V]) Put(key K, value V) bool {
	isNew := om.m.Put(key, value)
	if isNew {
		om.order = append(om.order, key)
	}

	return isNew
}

// InsertAt places key at index i of the order. An existing key is moved, not
// duplicated: it ends up at index i of the resulting sequence with the new
// value. Reports whether the key was newly inserted. Panics if i is outside
// [0, Len()].
func (om *OrderedMap[K, V]) InsertAt(i int, key K, value V) bool {
	if i < 0 || i > len(om.order) {
		panic("shiftmap: insert index out of range")
	}

	if om.m.Set(key, value) {
		om.order = slices.Insert(om.order, i, key)
		return true
	}

	old := slices.Index(om.order, key)
	om.order = slices.Delete(om.order, old, old+1)
	om.order = slices.Insert(om.order, min(i, len(om.order)), key)

	return false
}

// RemoveAt removes the entry at index i of the order from both the order and
// the table, returning it. Panics if i is out of range.
func (om *OrderedMap[K, V]) RemoveAt(i int) (K, V) {
	key := om.order[i]
	value, _ := om.m.Get(key)

	om.m.Delete(key)
	om.order = slices.Delete(om.order, i, i+1)

	return key, value
}

// Delete removes key. Removing an absent key is a no-op reporting false.
func (om *OrderedMap[K, V]) Delete(key K) bool {
	i := slices.Index(om.order, key)
	if i < 0 {
		return false
	}

	om.RemoveAt(i)

	return true
}

// Alter replaces the key before with after, keeping its value and its order
// position. Reports false without changing anything when before is absent or
// after is already present; altering a key to itself succeeds as a no-op.
func (om *OrderedMap[K, V]) Alter(before, after K) bool {
	if before == after {
		return om.Has(before)
	}

	i := slices.Index(om.order, before)
	if i < 0 || om.Has(after) {
		return false
	}

	om.rename(i, before, after)

	return true
}

// AlterAt is the positional variant of Alter: it renames the key at index i,
// skipping the order scan. Reports false when i is out of range or after is
// already present elsewhere.
func (om *OrderedMap[K, V]) AlterAt(i int, after K) bool {
	if i < 0 || i >= len(om.order) {
		return false
	}

	before := om.order[i]
	if before == after {
		return true
	}

	if om.Has(after) {
		return false
	}

	om.rename(i, before, after)

	return true
}

func (om *OrderedMap[K, V]) rename(i int, before, after K) {
	value, _ := om.m.Get(before)
	om.m.Delete(before)
	om.m.Set(after, value)
	om.order[i] = after
}

// Sort reorders the sequence in place with the given three-way comparator.
// The sort is stable and never touches the table's slot layout. The
// comparator must be non-nil: arbitrary comparable key types have no natural
// ordering (SortOrdered covers ordered element types).
func (om *OrderedMap[K, V]) Sort(cmp func(a, b K) int) {
	if cmp == nil {
		panic("shiftmap: Sort requires a comparator")
	}

	Sort(om.order, 0, len(om.order), cmp)
}

// First returns the entry at the front of the order, or ErrEmpty.
func (om *OrderedMap[K, V]) First() (K, V, error) {
	if len(om.order) == 0 {
		var k K
		return k, om.m.t.missing, ErrEmpty
	}

	k, v := om.At(0)

	return k, v, nil
}

// Last returns the entry at the back of the order, or ErrEmpty.
func (om *OrderedMap[K, V]) Last() (K, V, error) {
	if len(om.order) == 0 {
		var k K
		return k, om.m.t.missing, ErrEmpty
	}

	k, v := om.At(len(om.order) - 1)

	return k, v, nil
}

// At returns the entry at index i of the order. Panics if i is out of range.
func (om *OrderedMap[K, V]) At(i int) (K, V) {
	key := om.order[i]
	value, _ := om.m.Get(key)

	return key, value
}

// IndexOf returns the order position of key, or -1 when absent.
func (om *OrderedMap[K, V]) IndexOf(key K) int {
	return slices.Index(om.order, key)
}

// Keys returns a copy of the key sequence in order.
func (om *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(om.order)
}

// Clear drops every entry but keeps the table capacity.
func (om *OrderedMap[K, V]) Clear() {
	om.m.Clear()
	om.order = om.order[:0]
}

// Iter returns an in-order cursor. Remove is valid exactly once per call to
// Next and not before the first.
func (om *OrderedMap[K, V]) Iter() *OrderedMapIter[K, V] {
	return &OrderedMapIter[K, V]{om: om}
}

type OrderedMapIter[K comparable, V any] struct {
	om *OrderedMap[K, V]

	next      int
	key       K
	val       V
	canRemove bool
}

func (it *OrderedMapIter[K, V]) Next() bool {
	it.canRemove = false

	if it.next >= len(it.om.order) {
		return false
	}

	it.key, it.val = it.om.At(it.next)
	it.next++
	it.canRemove = true

	return true
}

func (it *OrderedMapIter[K, V]) Key() K {
	return it.key
}

func (it *OrderedMapIter[K, V]) Value() V {
	return it.val
}

// Remove deletes the entry returned by the last call to Next from both the
// order and the table.
func (it *OrderedMapIter[K, V]) Remove() {
	if !it.canRemove {
		panic("shiftmap: Remove without a preceding Next")
	}
	it.canRemove = false

	it.next--
	it.om.RemoveAt(it.next)
}

// OrderedSet is a Set with a deterministic iteration order.
type OrderedSet[K comparable] struct {
	s     Set[K]
	order []K
}

func NewOrderedSet[K comparable](capacity int, opts ...SetOption[K]) *OrderedSet[K] {
	var os OrderedSet[K]
	os.s.t.init(capacity, opts...)

	return &os
}

func (os *OrderedSet[K]) Has(key K) bool {
	return os.s.Has(key)
}

func (os *OrderedSet[K]) Len() int {
	return len(os.order)
}

func (os *OrderedSet[K]) Cap() int {
	return os.s.Cap()
}

// Put adds key at the end of the order if absent.
func (os *OrderedSet[K]) Put(key K) bool {
	isNew := os.s.Put(key)
	if isNew {
		os.order = append(os.order, key)
	}

	return isNew
}

// InsertAt places key at index i of the order, moving it when already
// present. Panics if i is outside [0, Len()].
func (os *OrderedSet[K]) InsertAt(i int, key K) bool {
	if i < 0 || i > len(os.order) {
		panic("shiftmap: insert index out of range")
	}

	if os.s.Put(key) {
		os.order = slices.Insert(os.order, i, key)
		return true
	}

	old := slices.Index(os.order, key)
	os.order = slices.Delete(os.order, old, old+1)
	os.order = slices.Insert(os.order, min(i, len(os.order)), key)

	return false
}

// RemoveAt removes and returns the key at index i. Panics if i is out of
// range.
func (os *OrderedSet[K]) RemoveAt(i int) K {
	key := os.order[i]

	os.s.Delete(key)
	os.order = slices.Delete(os.order, i, i+1)

	return key
}

func (os *OrderedSet[K]) Delete(key K) bool {
	i := slices.Index(os.order, key)
	if i < 0 {
		return false
	}

	os.RemoveAt(i)

	return true
}

// Alter replaces before with after in place. Same contract as
// OrderedMap.Alter.
func (os *OrderedSet[K]) Alter(before, after K) bool {
	if before == after {
		return os.Has(before)
	}

	i := slices.Index(os.order, before)
	if i < 0 || os.Has(after) {
		return false
	}

	os.s.Delete(before)
	os.s.Put(after)
	os.order[i] = after

	return true
}

// AlterAt renames the key at index i. Same contract as OrderedMap.AlterAt.
func (os *OrderedSet[K]) AlterAt(i int, after K) bool {
	if i < 0 || i >= len(os.order) {
		return false
	}

	before := os.order[i]
	if before == after {
		return true
	}

	if os.Has(after) {
		return false
	}

	os.s.Delete(before)
	os.s.Put(after)
	os.order[i] = after

	return true
}

// Sort reorders the set in place with the given three-way comparator. Stable.
func (os *OrderedSet[K]) Sort(cmp func(a, b K) int) {
	if cmp == nil {
		panic("shiftmap: Sort requires a comparator")
	}

	Sort(os.order, 0, len(os.order), cmp)
}

// First returns the key at the front of the order, or ErrEmpty.
func (os *OrderedSet[K]) First() (K, error) {
	if len(os.order) == 0 {
		var k K
		return k, ErrEmpty
	}

	return os.order[0], nil
}

// Last returns the key at the back of the order, or ErrEmpty.
func (os *OrderedSet[K]) Last() (K, error) {
	if len(os.order) == 0 {
		var k K
		return k, ErrEmpty
	}

	return os.order[len(os.order)-1], nil
}

// At returns the key at index i. Panics if i is out of range.
func (os *OrderedSet[K]) At(i int) K {
	return os.order[i]
}

func (os *OrderedSet[K]) IndexOf(key K) int {
	return slices.Index(os.order, key)
}

func (os *OrderedSet[K]) Keys() []K {
	return slices.Clone(os.order)
}

func (os *OrderedSet[K]) Clear() {
	os.s.Clear()
	os.order = os.order[:0]
}

// Iter returns an in-order cursor satisfying Iterator[K].
func (os *OrderedSet[K]) Iter() *OrderedSetIter[K] {
	return &OrderedSetIter[K]{os: os}
}

type OrderedSetIter[K comparable] struct {
	os *OrderedSet[K]

	next      int
	key       K
	canRemove bool
}

func (it *OrderedSetIter[K]) Next() bool {
	it.canRemove = false

	if it.next >= len(it.os.order) {
		return false
	}

	it.key = it.os.order[it.next]
	it.next++
	it.canRemove = true

	return true
}

func (it *OrderedSetIter[K]) Value() K {
	return it.key
}

func (it *OrderedSetIter[K]) Remove() {
	if !it.canRemove {
		panic("shiftmap: Remove without a preceding Next")
	}
	it.canRemove = false

	it.next--
	it.os.RemoveAt(it.next)
}
