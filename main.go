// Self-check driver: replays the library's acceptance scenarios and exits
// non-zero on the first failed check. Not a product CLI.
package main

import (
	"reflect"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"lifo_stack/pkg/stack"
	"lifo_stack/pkg/util"
)

func assert(ok bool, format string, args ...interface{}) {
	if !ok {
		log.Fatalf(format, args...)
	}
}

func drain[T comparable](s *stack.Stack[T]) []T {
	out := []T{}
	it := s.Iterator()
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func main() {
	s1 := stack.New[int]()
	assert(s1.IsEmpty(), "new stack must be empty")
	assert(!s1.Bool(), "empty stack must be false")
	_, ok := s1.Top()
	assert(!ok, "top of empty stack must be absent")
	_, err := s1.Pop()
	assert(errors.Is(err, stack.ErrEmptyStack), "pop of empty stack must fail with ErrEmptyStack, got %v", err)
	assert(s1.String() == "[]", "empty stack must render as [], got %q", s1)

	s2 := stack.New(0, 1, 2, 3)
	assert(s2.Bool(), "non-empty stack must be true")
	assert(s2.Len() == 4, "expected length 4, got %d", s2.Len())
	top, ok := s2.Top()
	assert(ok && top == 3, "expected top 3, got %v", top)
	assert(reflect.DeepEqual(drain(s2), []int{3, 2, 1, 0}), "iteration must run top to bottom")
	assert(s2.Contains(2) && !s2.Contains(6), "containment checks failed")
	assert(s2.Count(3) == 1 && s1.Count(3) == 0, "count checks failed")
	assert(util.Must(s2.Pop()) == 3, "pop must return the top")
	assert(s2.Equal(stack.New(0, 1, 2)), "pop must leave the rest intact, got %v", s2)
	assert(reflect.DeepEqual(s2.Items(), []int{0, 1, 2}), "items must run bottom to top")
	assert(reflect.DeepEqual(s2.List(), []int{2, 1, 0}), "list must run top to bottom")

	s2 = stack.New(0, 1, 2, 3)
	assert(util.Must(s2.Repeat(0)).IsEmpty(), "stack * 0 must be empty")
	assert(s2.Len() == 4, "stack * 0 must not mutate the original")
	assert(util.Must(s2.Repeat(1)).Equal(stack.New(0, 1, 2, 3)), "stack * 1 must equal the original")
	assert(util.Must(s2.Repeat(2)).Equal(stack.New(0, 1, 2, 3, 0, 1, 2, 3)), "stack * 2 failed, got %v", s2)
	_, err = s2.Repeat(-1)
	assert(errors.Is(err, stack.ErrInvalidMultiplier), "negative multiplier must fail, got %v", err)

	a := stack.New(0, 1)
	b := stack.New(2, 3)
	assert(a.Concat(b).Equal(stack.New(0, 1, 2, 3)), "concatenation failed, got %v", a)
	assert(b.Equal(stack.New(2, 3)), "concatenation must not mutate the right operand")
	assert(a.Extend(4, 5).Equal(stack.New(0, 1, 2, 3, 4, 5)), "extend failed, got %v", a)

	s3 := stack.New[any]("elt", [2]int{1, 2}, 3)
	assert(s3.Count([2]int{1, 2}) == 1, "count of a composite element failed")
	util.Must(s3.Pop())
	util.Must(s3.Pop())
	top3, ok := s3.Top()
	assert(ok && top3 == "elt", "expected \"elt\" at the top, got %v", top3)

	log.Info("all stack self-checks passed")
}
