// Package rootish provides a list whose wasted space is O(√n).
//
// Elements are stored in a sequence of blocks where block b has b+1 slots.
// After r blocks the capacity is r(r+1)/2,
// so at most about √(2n) slots are ever unused,
// compared to the n unused slots an array that doubles can have.
package rootish

import (
	"math"

	"zombiezen.com/go/arrayseq/arraystack"
	"zombiezen.com/go/arrayseq/slots"
)

// Stack is a list stored in triangular blocks.
// Adding or removing at the end is amortized O(1);
// adding or removing at position i costs O(Len() - i).
// The zero value is an empty stack.
type Stack[T any] struct {
	blocks arraystack.Stack[slots.Array[T]]
	n      int
}

// New returns an empty stack with enough blocks for minCapacity elements.
// New panics if minCapacity is negative.
func New[T any](minCapacity int) *Stack[T] {
	if minCapacity < 0 {
		panic("rootish: negative capacity")
	}
	if minCapacity == 0 {
		return new(Stack[T])
	}
	r := i2b(minCapacity-1) + 1
	s := &Stack[T]{blocks: *arraystack.New[slots.Array[T]](r)}
	for b := 0; b < r; b++ {
		s.blocks.Push(slots.Make[T](b + 1))
	}
	return s
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return s.n
}

// Cap returns the total number of slots in all blocks.
func (s *Stack[T]) Cap() int {
	return triangle(s.blocks.Len())
}

// Blocks returns the number of allocated blocks.
func (s *Stack[T]) Blocks() int {
	return s.blocks.Len()
}

// Get returns the element at index i.
// ok is false if i is not in [0, s.Len()).
func (s *Stack[T]) Get(i int) (_ T, ok bool) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, false
	}
	block, j := s.locate(i)
	return block.Get(j)
}

// Set replaces the element at index i with x
// and returns the element it replaced.
// If i is not in [0, s.Len()), Set does nothing and returns false.
func (s *Stack[T]) Set(i int, x T) (prev T, ok bool) {
	if i < 0 || i >= s.n {
		return prev, false
	}
	block, j := s.locate(i)
	return block.Set(j, x)
}

// Add inserts x at index i, shifting the elements at i and after up by one.
// It reports whether i was in [0, s.Len()];
// for any other index the stack is left unchanged.
func (s *Stack[T]) Add(i int, x T) bool {
	if i < 0 || i > s.n {
		return false
	}
	if r := s.blocks.Len(); triangle(r) < s.n+1 {
		s.blocks.Push(slots.Make[T](r + 1))
	}
	s.n++
	for j := s.n - 1; j > i; j-- {
		s.move(j, j-1)
	}
	block, j := s.locate(i)
	block.Set(j, x)
	return true
}

// Remove removes the element at index i,
// shifting the elements after it down by one.
// ok is false if i is not in [0, s.Len()).
// Remove releases trailing blocks once two fewer blocks
// would still hold every element.
func (s *Stack[T]) Remove(i int) (_ T, ok bool) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, false
	}
	block, j := s.locate(i)
	x, _ := block.Take(j)
	for j := i; j < s.n-1; j++ {
		s.move(j, j+1)
	}
	s.n--
	for r := s.blocks.Len(); r > 0 && triangle(r-2) >= s.n; r-- {
		s.blocks.Pop()
	}
	return x, true
}

// move moves the element at index src to index dst,
// leaving src empty.
func (s *Stack[T]) move(dst, src int) {
	srcBlock, srcOff := s.locate(src)
	x, _ := srcBlock.Take(srcOff)
	dstBlock, dstOff := s.locate(dst)
	dstBlock.Set(dstOff, x)
}

// locate returns the block holding index i and the offset within it.
func (s *Stack[T]) locate(i int) (slots.Array[T], int) {
	b := i2b(i)
	block, _ := s.blocks.Get(b)
	return block, i - triangle(b)
}

// i2b returns the block that holds index i:
// the b for which b(b+1)/2 <= i < (b+1)(b+2)/2.
func i2b(i int) int {
	// b(b+1)/2 <= i is equivalent to (2b+1)² <= 8i+1.
	return (isqrt(8*i+1) - 1) / 2
}

// triangle returns the number of slots in the first r blocks.
// triangle(r) is zero for r <= 0.
func triangle(r int) int {
	if r <= 0 {
		return 0
	}
	return r * (r + 1) / 2
}

// isqrt returns ⌊√x⌋ for x >= 0.
func isqrt(x int) int {
	s := int(math.Sqrt(float64(x)))
	// Correct for rounding in the conversion to and from float64.
	for s*s > x {
		s--
	}
	for (s+1)*(s+1) <= x {
		s++
	}
	return s
}
