package stack

// Iterator walks a stack from top to bottom. Every call to Stack.Iterator
// produces an independent cursor, so nested or repeated traversals of the
// same stack do not disturb each other. The cursor reads the live stack,
// not a snapshot: elements pushed or popped between steps are reflected by
// later steps, and a stack that shrinks below the cursor ends the traversal.
type Iterator[T comparable] struct {
	s     *Stack[T]
	index int
	value T
}

// Iterator returns a fresh traversal positioned above the current top.
func (s *Stack[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{s: s, index: len(s.elts)}
}

// Next advances the cursor and reports whether an element is available.
// It must be called before the first Value.
func (it *Iterator[T]) Next() bool {
	if it.index > len(it.s.elts) {
		it.index = len(it.s.elts)
	}
	if it.index <= 0 {
		return false
	}

	it.index--
	it.value = it.s.elts[it.index]
	return true
}

// Value returns the element the last successful Next stopped on.
func (it *Iterator[T]) Value() T {
	return it.value
}
