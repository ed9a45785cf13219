package shiftmap

// Map is a hash map backed by the linear-probing engine. Unlike the built-in
// map it exposes its capacity and load factor, never shrinks, and frees
// removed entries eagerly via backward-shift deletion instead of tombstones.
//
// Iteration order is unspecified; see OrderedMap for a deterministic order.
// The map is not synchronized, and mutating it during iteration other than
// through the cursor's own Remove gives undefined results.
type Map[K comparable, V any] struct {
	t table[K, V]

	// The engine reserves the zero value of K as its empty-slot sentinel, so
	// a zero-valued key lives in this out-of-band slot instead.
	hasZero bool
	zeroVal V
}

// Returns a new map. A zero capacity defers allocation to the first insert.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.t.init(capacity, opts...)

	return &m
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if key == m.t.zero {
		if m.hasZero {
			return m.zeroVal, true
		}

		return m.t.missing, false
	}

	return m.t.get(key)
}

// GetOrDefault returns the value for key, or the instance default (zero
// unless configured via WithDefault) when the key is absent.
func (m *Map[K, V]) GetOrDefault(key K) V {
	v, _ := m.Get(key)
	return v
}

func (m *Map[K, V]) Has(key K) bool {
	if key == m.t.zero {
		return m.hasZero
	}

	return m.t.has(key)
}

// Set inserts or updates key. Reports whether the key was newly inserted.
func (m *Map[K, V]) Set(key K, value V) bool {
	if key == m.t.zero {
		isNew := !m.hasZero
		m.hasZero = true
		m.zeroVal = value

		return isNew
	}

	return m.t.set(key, value)
}

// Put inserts key only if absent. Reports whether the key was inserted.
func (m *Map[K, V]) Put(key K, value V) bool {
	if key == m.t.zero {
		if m.hasZero {
			return false
		}

		m.hasZero = true
		m.zeroVal = value

		return true
	}

	return m.t.put(key, value)
}

// Delete removes key. Removing an absent key is a no-op reporting false.
func (m *Map[K, V]) Delete(key K) bool {
	if key == m.t.zero {
		if !m.hasZero {
			return false
		}

		m.hasZero = false

		var empty V
		m.zeroVal = empty

		return true
	}

	return m.t.del(key)
}

func (m *Map[K, V]) Len() int {
	if m.hasZero {
		return m.t.size + 1
	}

	return m.t.size
}

func (m *Map[K, V]) Cap() int {
	return m.t.capacity()
}

// Clear drops every entry but keeps the current capacity.
func (m *Map[K, V]) Clear() {
	m.t.clear()
	m.hasZero = false

	var empty V
	m.zeroVal = empty
}

// Keys returns the live keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	if m.hasZero {
		keys = append(keys, m.t.zero)
	}

	for _, k := range m.t.keys {
		if k != m.t.zero {
			keys = append(keys, k)
		}
	}

	return keys
}

// Iter returns a cursor over the map. The cursor yields copies, so the
// observed key and value stay valid after the next call to Next.
func (m *Map[K, V]) Iter() *MapIter[K, V] {
	return &MapIter[K, V]{m: m, zeroPending: m.hasZero}
}

// MapIter is a cursor over a Map. Remove is valid exactly once per call to
// Next and not before the first.
type MapIter[K comparable, V any] struct {
	m *Map[K, V]

	slot        int
	key         K
	val         V
	zeroPending bool
	onZero      bool
	canRemove   bool

	// Keys a backward shift displaced across the array wrap during Remove.
	// They moved from an already-visited slot to an unvisited one and must
	// not be yielded twice.
	skip []K
}

func (it *MapIter[K, V]) Next() bool {
	it.canRemove = false
	it.onZero = false

	if it.zeroPending {
		it.zeroPending = false
		it.onZero = true
		it.key = it.m.t.zero
		it.val = it.m.zeroVal
		it.canRemove = true

		return true
	}

	t := &it.m.t
	for it.slot < len(t.keys) {
		i := it.slot
		it.slot++

		k := t.keys[i]
		if k == t.zero || it.skipOnce(k) {
			continue
		}

		it.key = k
		it.val = t.values[i]
		it.canRemove = true

		return true
	}

	return false
}

func (it *MapIter[K, V]) Key() K {
	return it.key
}

func (it *MapIter[K, V]) Value() V {
	return it.val
}

// Remove deletes the entry returned by the last call to Next.
func (it *MapIter[K, V]) Remove() {
	if !it.canRemove {
		panic("shiftmap: Remove without a preceding Next")
	}
	it.canRemove = false

	if it.onZero {
		it.m.Delete(it.m.t.zero)
		return
	}

	cur := it.slot - 1
	it.m.t.shiftOut(cur, func(k K, src, dst int) {
		if src < cur && dst >= cur {
			it.skip = append(it.skip, k)
		}
	})

	// Another entry may have been shifted into the freed slot; revisit it.
	it.slot = cur
}

func (it *MapIter[K, V]) skipOnce(k K) bool {
	for i, s := range it.skip {
		if s == k {
			it.skip[i] = it.skip[len(it.skip)-1]
			it.skip = it.skip[:len(it.skip)-1]

			return true
		}
	}

	return false
}
