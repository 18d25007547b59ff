// Package slots provides the fixed-capacity backing store
// shared by the array-based sequences in this module.
package slots

import "math/bits"

// Array is a fixed-capacity run of slots.
// Each slot is either empty or holds exactly one element.
// The zero value is an array with no slots.
//
// Array has reference semantics like a slice:
// copies of an Array value share the same slots.
type Array[T any] struct {
	slots []slot[T]
}

type slot[T any] struct {
	x    T
	full bool
}

// Make returns an array of n empty slots.
// Make panics if n is negative.
func Make[T any](n int) Array[T] {
	if n < 0 {
		panic("slots: negative capacity")
	}
	return Array[T]{slots: make([]slot[T], n)}
}

// Len returns the number of slots in the array.
func (a Array[T]) Len() int {
	return len(a.slots)
}

// Get returns the element stored in slot i.
// ok is false if i is out of range or the slot is empty.
func (a Array[T]) Get(i int) (_ T, ok bool) {
	if i < 0 || i >= len(a.slots) {
		var zero T
		return zero, false
	}
	s := a.slots[i]
	return s.x, s.full
}

// Set stores x in slot i and returns the element it replaced, if any.
// If i is out of range, Set does nothing and returns false.
func (a Array[T]) Set(i int, x T) (prev T, ok bool) {
	if i < 0 || i >= len(a.slots) {
		return prev, false
	}
	prev, ok = a.slots[i].x, a.slots[i].full
	a.slots[i] = slot[T]{x: x, full: true}
	return prev, ok
}

// Take empties slot i and returns the element it held, if any.
func (a Array[T]) Take(i int) (_ T, ok bool) {
	if i < 0 || i >= len(a.slots) {
		var zero T
		return zero, false
	}
	s := a.slots[i]
	a.slots[i] = slot[T]{}
	return s.x, s.full
}

// Populated returns the number of slots that hold an element.
func (a Array[T]) Populated() int {
	n := 0
	for _, s := range a.slots {
		if s.full {
			n++
		}
	}
	return n
}

// Move moves the n slots starting at src to start at dst.
// The source and destination ranges may overlap.
// Source slots that are not part of the destination range are left empty.
// Both ranges must lie within the array.
func (a Array[T]) Move(dst, src, n int) {
	if n <= 0 || dst == src {
		return
	}
	copy(a.slots[dst:dst+n], a.slots[src:src+n])
	if dst > src {
		clear(a.slots[src:min(dst, src+n)])
	} else {
		clear(a.slots[max(dst+n, src) : src+n])
	}
}

// Copy copies n slots of src starting at srcOff
// into dst starting at dstOff.
// dst and src must not share slots.
func Copy[T any](dst Array[T], dstOff int, src Array[T], srcOff int, n int) {
	if n <= 0 {
		return
	}
	copy(dst.slots[dstOff:dstOff+n], src.slots[srcOff:srcOff+n])
}

// WrapCopy copies a potentially wrapping block of slots n long from src to dst,
// treating the array as circular.
// abs(dst - src) + n must be no larger than a.Len()
// (i.e. there must be at most one continuous overlapping region between src and dst).
// Unlike Move, WrapCopy leaves the source slots as they were;
// callers empty whichever slots they vacate.
func (a Array[T]) WrapCopy(dst, src, n int) {
	array := a.slots
	if src == dst || n == 0 {
		return
	}
	dstAfterSrc := WrapIndex(dst-src, len(array)) < n
	srcPreWrapLen := len(array) - src
	dstPreWrapLen := len(array) - dst
	srcWraps := srcPreWrapLen < n
	dstWraps := dstPreWrapLen < n

	switch {
	case !srcWraps && !dstWraps:
		copy(array[dst:], array[src:src+n])
	case !dstAfterSrc && !srcWraps && dstWraps:
		copy(array[dst:], array[src:src+dstPreWrapLen])
		copy(array, array[src+dstPreWrapLen:src+n])
	case dstAfterSrc && !srcWraps && dstWraps:
		copy(array, array[src+dstPreWrapLen:src+n])
		copy(array[dst:], array[src:src+dstPreWrapLen])
	case !dstAfterSrc && srcWraps && !dstWraps:
		copy(array[dst:], array[src:src+srcPreWrapLen])
		copy(array[dst+srcPreWrapLen:], array[:n-srcPreWrapLen])
	case dstAfterSrc && srcWraps && !dstWraps:
		copy(array[dst+srcPreWrapLen:], array[:n-srcPreWrapLen])
		copy(array[dst:], array[src:src+srcPreWrapLen])
	case !dstAfterSrc && srcWraps && dstWraps:
		delta := dstPreWrapLen - srcPreWrapLen
		copy(array[dst:], array[src:src+srcPreWrapLen])
		copy(array[dst+srcPreWrapLen:], array[:delta])
		copy(array, array[delta:delta+n-dstPreWrapLen])
	default:
		delta := srcPreWrapLen - dstPreWrapLen
		copy(array[delta:], array[:n-srcPreWrapLen])
		copy(array, array[len(array)-delta:])
		copy(array[dst:], array[src:src+dstPreWrapLen])
	}
}

// WrapIndex maps i onto [0, size) as an index into a circular array.
// size must be positive.
func WrapIndex(i, size int) int {
	if !isPowerOfTwo(size) {
		for i < 0 {
			i += size
		}
		return i % size
	}
	return i & (size - 1)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
