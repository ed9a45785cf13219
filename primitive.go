package shiftmap

import "math"

// Primitive-keyed constructors. These are thin instantiations of the engine
// that swap the maphash default for a splitmix mix of the key's bit pattern,
// which is cheaper and spreads sequential keys.

func NewInt64Map[V any](capacity int, opts ...Option[int64, V]) *Map[int64, V] {
	opts = append([]Option[int64, V]{
		WithHashFunc[int64, V](func(k int64) uint64 { return Mix64(uint64(k)) }),
	}, opts...)

	return New(capacity, opts...)
}

func NewUint64Map[V any](capacity int, opts ...Option[uint64, V]) *Map[uint64, V] {
	opts = append([]Option[uint64, V]{
		WithHashFunc[uint64, V](Mix64),
	}, opts...)

	return New(capacity, opts...)
}

func NewInt64Set(capacity int, opts ...SetOption[int64]) *Set[int64] {
	opts = append([]SetOption[int64]{
		WithHashFunc[int64, struct{}](func(k int64) uint64 { return Mix64(uint64(k)) }),
	}, opts...)

	return NewSet(capacity, opts...)
}

func NewUint64Set(capacity int, opts ...SetOption[uint64]) *Set[uint64] {
	opts = append([]SetOption[uint64]{
		WithHashFunc[uint64, struct{}](Mix64),
	}, opts...)

	return NewSet(capacity, opts...)
}

// Float64Map keys compare by raw bit pattern: -0.0 and +0.0 are distinct
// keys, and NaNs with distinct encodings are distinct keys (so a NaN key is
// retrievable, unlike in the built-in map). +0.0 has the zero bit pattern
// and rides the engine's out-of-band zero slot like any other zero key.
type Float64Map[V any] struct {
	m *Map[uint64, V]
}

func NewFloat64Map[V any](capacity int, opts ...Option[uint64, V]) *Float64Map[V] {
	return &Float64Map[V]{m: NewUint64Map[V](capacity, opts...)}
}

func (fm *Float64Map[V]) Get(key float64) (V, bool) {
	return fm.m.Get(math.Float64bits(key))
}

func (fm *Float64Map[V]) GetOrDefault(key float64) V {
	return fm.m.GetOrDefault(math.Float64bits(key))
}

func (fm *Float64Map[V]) Has(key float64) bool {
	return fm.m.Has(math.Float64bits(key))
}

func (fm *Float64Map[V]) Set(key float64, value V) bool {
	return fm.m.Set(math.Float64bits(key), value)
}

func (fm *Float64Map[V]) Put(key float64, value V) bool {
	return fm.m.Put(math.Float64bits(key), value)
}

func (fm *Float64Map[V]) Delete(key float64) bool {
	return fm.m.Delete(math.Float64bits(key))
}

func (fm *Float64Map[V]) Len() int {
	return fm.m.Len()
}

func (fm *Float64Map[V]) Cap() int {
	return fm.m.Cap()
}

func (fm *Float64Map[V]) Clear() {
	fm.m.Clear()
}

// Keys returns the live keys in unspecified order, bit patterns preserved.
func (fm *Float64Map[V]) Keys() []float64 {
	raw := fm.m.Keys()
	keys := make([]float64, len(raw))
	for i, bits := range raw {
		keys[i] = math.Float64frombits(bits)
	}

	return keys
}

// Float64Set is the set form of Float64Map, with the same raw-bit equality.
type Float64Set struct {
	s *Set[uint64]
}

func NewFloat64Set(capacity int, opts ...SetOption[uint64]) *Float64Set {
	return &Float64Set{s: NewUint64Set(capacity, opts...)}
}

func (fs *Float64Set) Has(key float64) bool {
	return fs.s.Has(math.Float64bits(key))
}

func (fs *Float64Set) Put(key float64) bool {
	return fs.s.Put(math.Float64bits(key))
}

func (fs *Float64Set) Delete(key float64) bool {
	return fs.s.Delete(math.Float64bits(key))
}

func (fs *Float64Set) Len() int {
	return fs.s.Len()
}

func (fs *Float64Set) Cap() int {
	return fs.s.Cap()
}

func (fs *Float64Set) Clear() {
	fs.s.Clear()
}

func (fs *Float64Set) Keys() []float64 {
	raw := fs.s.Keys()
	keys := make([]float64, len(raw))
	for i, bits := range raw {
		keys[i] = math.Float64frombits(bits)
	}

	return keys
}
