package shiftmap

// Iterator is the cursor contract shared by the set and ordered containers.
// Remove deletes the element returned by the last call to Next from the
// underlying container; it is valid exactly once per call to Next and panics
// before the first Next or when called twice.
type Iterator[T any] interface {
	Next() bool
	Value() T
	Remove()
}

// Filter wraps it, yielding only the elements keep accepts. Remove delegates
// to the wrapped cursor.
func Filter[T any](it Iterator[T], keep func(T) bool) Iterator[T] {
	return &filterIter[T]{it: it, keep: keep}
}

type filterIter[T any] struct {
	it   Iterator[T]
	keep func(T) bool
}

func (f *filterIter[T]) Next() bool {
	for f.it.Next() {
		if f.keep(f.it.Value()) {
			return true
		}
	}

	return false
}

func (f *filterIter[T]) Value() T { return f.it.Value() }
func (f *filterIter[T]) Remove()  { f.it.Remove() }

// Edit wraps it, applying edit to every yielded element. The container is
// not modified; Remove still removes the original element.
func Edit[T any](it Iterator[T], edit func(T) T) Iterator[T] {
	return &editIter[T]{it: it, edit: edit}
}

type editIter[T any] struct {
	it   Iterator[T]
	edit func(T) T
}

func (e *editIter[T]) Next() bool { return e.it.Next() }
func (e *editIter[T]) Value() T   { return e.edit(e.it.Value()) }
func (e *editIter[T]) Remove()    { e.it.Remove() }

// Limit wraps it, yielding at most n elements.
func Limit[T any](it Iterator[T], n int) Iterator[T] {
	return &limitIter[T]{it: it, left: n}
}

type limitIter[T any] struct {
	it   Iterator[T]
	left int
}

func (l *limitIter[T]) Next() bool {
	if l.left <= 0 || !l.it.Next() {
		return false
	}
	l.left--

	return true
}

func (l *limitIter[T]) Value() T { return l.it.Value() }
func (l *limitIter[T]) Remove()  { l.it.Remove() }

// Stride wraps it, yielding the first element and every step-th one after.
func Stride[T any](it Iterator[T], step int) Iterator[T] {
	if step < 1 {
		panic("shiftmap: stride step must be positive")
	}

	return &strideIter[T]{it: it, step: step}
}

type strideIter[T any] struct {
	it      Iterator[T]
	step    int
	started bool
}

func (s *strideIter[T]) Next() bool {
	skip := 0
	if s.started {
		skip = s.step - 1
	}
	s.started = true

	for ; skip > 0; skip-- {
		if !s.it.Next() {
			return false
		}
	}

	return s.it.Next()
}

func (s *strideIter[T]) Value() T { return s.it.Value() }
func (s *strideIter[T]) Remove()  { s.it.Remove() }
