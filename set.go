package shiftmap

// SetOption configures a Set. Sets reuse the table options with an empty
// value type.
type SetOption[K comparable] = Option[K, struct{}]

// Set is a hash set backed by the same linear-probing engine as Map.
type Set[K comparable] struct {
	t table[K, struct{}]

	hasZero bool
}

// Returns a new set. A zero capacity defers allocation to the first insert.
func NewSet[K comparable](capacity int, opts ...SetOption[K]) *Set[K] {
	var s Set[K]
	s.t.init(capacity, opts...)

	return &s
}

func (s *Set[K]) Has(key K) bool {
	if key == s.t.zero {
		return s.hasZero
	}

	return s.t.has(key)
}

// Put adds key. Reports whether the key was newly added.
func (s *Set[K]) Put(key K) bool {
	if key == s.t.zero {
		isNew := !s.hasZero
		s.hasZero = true

		return isNew
	}

	return s.t.put(key, struct{}{})
}

// Delete removes key. Removing an absent key is a no-op reporting false.
func (s *Set[K]) Delete(key K) bool {
	if key == s.t.zero {
		if !s.hasZero {
			return false
		}

		s.hasZero = false

		return true
	}

	return s.t.del(key)
}

func (s *Set[K]) Len() int {
	if s.hasZero {
		return s.t.size + 1
	}

	return s.t.size
}

func (s *Set[K]) Cap() int {
	return s.t.capacity()
}

// Clear drops every key but keeps the current capacity.
func (s *Set[K]) Clear() {
	s.t.clear()
	s.hasZero = false
}

// Keys returns the live keys in unspecified order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.Len())
	if s.hasZero {
		keys = append(keys, s.t.zero)
	}

	for _, k := range s.t.keys {
		if k != s.t.zero {
			keys = append(keys, k)
		}
	}

	return keys
}

// Iter returns a cursor over the set. It satisfies Iterator[K], so the
// iterator decorators compose over it.
func (s *Set[K]) Iter() *SetIter[K] {
	return &SetIter[K]{s: s, zeroPending: s.hasZero}
}

// SetIter is a cursor over a Set. Remove is valid exactly once per call to
// Next and not before the first.
type SetIter[K comparable] struct {
	s *Set[K]

	slot        int
	key         K
	zeroPending bool
	onZero      bool
	canRemove   bool

	skip []K
}

func (it *SetIter[K]) Next() bool {
	it.canRemove = false
	it.onZero = false

	if it.zeroPending {
		it.zeroPending = false
		it.onZero = true
		it.key = it.s.t.zero
		it.canRemove = true

		return true
	}

	t := &it.s.t
	for it.slot < len(t.keys) {
		i := it.slot
		it.slot++

		k := t.keys[i]
		if k == t.zero || it.skipOnce(k) {
			continue
		}

		it.key = k
		it.canRemove = true

		return true
	}

	return false
}

func (it *SetIter[K]) Value() K {
	return it.key
}

// Remove deletes the key returned by the last call to Next.
func (it *SetIter[K]) Remove() {
	if !it.canRemove {
		panic("shiftmap: Remove without a preceding Next")
	}
	it.canRemove = false

	if it.onZero {
		it.s.Delete(it.s.t.zero)
		return
	}

	cur := it.slot - 1
	it.s.t.shiftOut(cur, func(k K, src, dst int) {
		if src < cur && dst >= cur {
			it.skip = append(it.skip, k)
		}
	})

	it.slot = cur
}

func (it *SetIter[K]) skipOnce(k K) bool {
	for i, s := range it.skip {
		if s == k {
			it.skip[i] = it.skip[len(it.skip)-1]
			it.skip = it.skip[:len(it.skip)-1]

			return true
		}
	}

	return false
}
