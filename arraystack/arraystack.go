// Package arraystack provides a list backed by a single growable array.
package arraystack

import "zombiezen.com/go/arrayseq/slots"

// Stack is a list whose elements occupy a prefix of one backing array.
// Adding or removing at the end is amortized O(1);
// adding or removing at position i costs O(Len() - i).
// The zero value is an empty stack.
type Stack[T any] struct {
	array slots.Array[T]
	n     int
}

// New returns an empty stack with the given backing capacity.
// New panics if capacity is negative.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		panic("arraystack: negative capacity")
	}
	return &Stack[T]{array: slots.Make[T](capacity)}
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return s.n
}

// Cap returns the capacity of the backing array.
func (s *Stack[T]) Cap() int {
	return s.array.Len()
}

// Get returns the element at index i.
// ok is false if i is not in [0, s.Len()).
func (s *Stack[T]) Get(i int) (_ T, ok bool) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, false
	}
	return s.array.Get(i)
}

// Set replaces the element at index i with x
// and returns the element it replaced.
// If i is not in [0, s.Len()), Set does nothing and returns false.
func (s *Stack[T]) Set(i int, x T) (prev T, ok bool) {
	if i < 0 || i >= s.n {
		return prev, false
	}
	return s.array.Set(i, x)
}

// Add inserts x at index i, shifting the elements at i and after up by one.
// It reports whether i was in [0, s.Len()];
// for any other index the stack is left unchanged.
func (s *Stack[T]) Add(i int, x T) bool {
	if i < 0 || i > s.n {
		return false
	}
	if s.n+1 > s.array.Len() {
		s.resize()
	}
	s.array.Move(i+1, i, s.n-i)
	s.array.Set(i, x)
	s.n++
	return true
}

// Remove removes the element at index i,
// shifting the elements after it down by one.
// ok is false if i is not in [0, s.Len()).
// Remove shrinks the backing array
// once it is at least three times larger than needed.
func (s *Stack[T]) Remove(i int) (_ T, ok bool) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, false
	}
	x, _ := s.array.Take(i)
	s.array.Move(i, i+1, s.n-i-1)
	s.n--
	if s.array.Len() >= 3*s.n {
		s.resize()
	}
	return x, true
}

// Push appends x to the end of the stack.
func (s *Stack[T]) Push(x T) {
	s.Add(s.n, x)
}

// Top returns the last element of the stack.
func (s *Stack[T]) Top() (_ T, ok bool) {
	return s.Get(s.n - 1)
}

// Pop removes the last element of the stack and returns it.
func (s *Stack[T]) Pop() (_ T, ok bool) {
	return s.Remove(s.n - 1)
}

// resize reallocates the backing array to twice the number of elements.
func (s *Stack[T]) resize() {
	newArray := slots.Make[T](max(2*s.n, 1))
	slots.Copy(newArray, 0, s.array, 0, s.n)
	s.array = newArray
}
