package stack

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var ErrEmptyStack = errors.New("empty stack")

var ErrInvalidMultiplier = errors.New("multiplier must be a non-negative integer")

// Stack is a growable LIFO container over elements of type T. Index 0 of the
// underlying sequence is the bottom, the last index is the top. Instantiate
// with T = any to hold mixed element types; popped values then carry their
// dynamic type. A Stack is not safe for concurrent use, callers sharing one
// across goroutines must synchronize externally.
type Stack[T comparable] struct {
	elts []T
}

// New creates a Stack pre-loaded with items pushed from first to last,
// so the last argument is the top. New() gives an empty stack.
func New[T comparable](items ...T) *Stack[T] {
	s := &Stack[T]{elts: make([]T, 0, len(items))}
	s.elts = append(s.elts, items...)
	return s
}

// Push adds item as the new top and returns the same stack for chaining.
func (s *Stack[T]) Push(item T) *Stack[T] {
	s.elts = append(s.elts, item)
	return s
}

// Extend pushes items from first to last, so the last one becomes the top.
// Returns the same stack for chaining.
func (s *Stack[T]) Extend(items ...T) *Stack[T] {
	s.elts = append(s.elts, items...)
	return s
}

// Pop removes and returns the top item. When the stack is empty it returns
// ErrEmptyStack and leaves the stack untouched.
func (s *Stack[T]) Pop() (T, error) {
	l := len(s.elts)
	if l == 0 {
		var zero T
		return zero, errors.WithStack(ErrEmptyStack)
	}

	item := s.elts[l-1]
	s.elts = s.elts[:l-1]
	return item, nil
}

// Top returns the top item without removing it. The second result is false
// when the stack is empty; Top never fails.
func (s *Stack[T]) Top() (T, bool) {
	if len(s.elts) == 0 {
		var zero T
		return zero, false
	}
	return s.elts[len(s.elts)-1], true
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.elts) == 0
}

// Bool is the stack's truth value: false iff empty.
func (s *Stack[T]) Bool() bool {
	return len(s.elts) > 0
}

func (s *Stack[T]) Len() int {
	return len(s.elts)
}

// Count returns the number of elements equal to item, 0 when absent.
func (s *Stack[T]) Count(item T) int {
	return lo.Count(s.elts, item)
}

// Contains reports whether item equals some element of the stack.
func (s *Stack[T]) Contains(item T) bool {
	return lo.Contains(s.elts, item)
}

// Items returns a copy of the elements from bottom to top. Mutating the
// result does not affect the stack.
func (s *Stack[T]) Items() []T {
	return append(make([]T, 0, len(s.elts)), s.elts...)
}

// List returns a copy of the elements from top to bottom, the exact reverse
// of Items.
func (s *Stack[T]) List() []T {
	return lo.Reverse(s.Items())
}

// Concat pushes every element of other, from bottom to top, onto s, so that
// other's top becomes s's new top. It reads a snapshot of other taken before
// the first push, so s.Concat(s) doubles the original contents instead of
// looping over its own appends. other is never modified. Returns s.
func (s *Stack[T]) Concat(other *Stack[T]) *Stack[T] {
	items := other.Items()
	s.elts = append(s.elts, items...)
	return s
}

// Repeat appends n-1 extra copies of the original contents onto s and
// returns s. n == 1 returns s unchanged; n == 0 returns a new empty stack
// and does not touch s. A negative n yields ErrInvalidMultiplier with no
// mutation. The original contents are snapshotted once before the loop, so
// the copies never include what the loop itself has appended.
func (s *Stack[T]) Repeat(n int) (*Stack[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidMultiplier, "got %d", n)
	}
	if n == 0 {
		return New[T](), nil
	}

	items := s.Items()
	for i := 0; i < n-1; i++ {
		s.elts = append(s.elts, items...)
	}
	return s, nil
}

// Equal reports whether other holds equal elements in the same order.
func (s *Stack[T]) Equal(other *Stack[T]) bool {
	if other == nil || len(s.elts) != len(other.elts) {
		return false
	}
	for i := range s.elts {
		if s.elts[i] != other.elts[i] {
			return false
		}
	}
	return true
}

// Clear removes all elements.
func (s *Stack[T]) Clear() {
	s.elts = s.elts[:0]
}

// String renders the type name and the bottom-to-top contents; an empty
// stack renders as "[]".
func (s *Stack[T]) String() string {
	if len(s.elts) == 0 {
		return "[]"
	}
	return "Stack" + fmt.Sprint(s.elts)
}
