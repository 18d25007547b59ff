// Package deque provides array-backed circular buffers:
// a double-ended queue with positional insertion and a FIFO queue.
package deque

import "zombiezen.com/go/arrayseq/slots"

// Deque is a double-ended queue stored in a circular array.
// Adding or removing at either end is amortized O(1),
// and adding or removing at position i costs O(min(i, Len()-i)).
// The zero value is an empty deque.
type Deque[T any] struct {
	array slots.Array[T]
	front int
	n     int
}

// New returns an empty deque with the given backing capacity.
// New panics if capacity is negative.
func New[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		panic("deque: negative capacity")
	}
	return &Deque[T]{array: slots.Make[T](capacity)}
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.n
}

// Cap returns the capacity of the backing array.
func (d *Deque[T]) Cap() int {
	return d.array.Len()
}

// physical returns the array index of logical index i.
func (d *Deque[T]) physical(i int) int {
	return slots.WrapIndex(d.front+i, d.array.Len())
}

// Get returns the element at the given index,
// with 0 being the front of the queue.
// ok is false if i is not in [0, d.Len()).
func (d *Deque[T]) Get(i int) (_ T, ok bool) {
	if i < 0 || i >= d.n {
		var zero T
		return zero, false
	}
	return d.array.Get(d.physical(i))
}

// Set replaces the element at index i with x
// and returns the element it replaced.
// If i is not in [0, d.Len()), Set does nothing and returns false.
func (d *Deque[T]) Set(i int, x T) (prev T, ok bool) {
	if i < 0 || i >= d.n {
		return prev, false
	}
	return d.array.Set(d.physical(i), x)
}

// Add inserts x at index i.
// Whichever of the elements before i or the elements at and after i
// is the smaller group is shifted to make room.
// Add reports whether i was in [0, d.Len()];
// for any other index the deque is left unchanged.
func (d *Deque[T]) Add(i int, x T) bool {
	if i < 0 || i > d.n {
		return false
	}
	if d.n+1 > d.array.Len() {
		d.resize()
	}
	if i < (d.n+1)/2 {
		// Shift [0, i) one slot to the left.
		d.front = slots.WrapIndex(d.front-1, d.array.Len())
		d.array.WrapCopy(d.front, d.physical(1), i)
	} else {
		// Shift [i, n) one slot to the right.
		d.array.WrapCopy(d.physical(i+1), d.physical(i), d.n-i)
	}
	d.array.Set(d.physical(i), x)
	d.n++
	return true
}

// Remove removes the element at index i and returns it.
// ok is false if i is not in [0, d.Len()).
// Remove shrinks the backing array
// once it is at least three times larger than needed.
func (d *Deque[T]) Remove(i int) (_ T, ok bool) {
	if i < 0 || i >= d.n {
		var zero T
		return zero, false
	}
	x, _ := d.array.Take(d.physical(i))
	if i < (d.n+1)/2 {
		// Shift [0, i) one slot to the right.
		d.array.WrapCopy(d.physical(1), d.front, i)
		d.array.Take(d.front)
		d.front = d.physical(1)
	} else {
		// Shift (i, n) one slot to the left.
		d.array.WrapCopy(d.physical(i), d.physical(i+1), d.n-i-1)
		d.array.Take(d.physical(d.n - 1))
	}
	d.n--
	d.shrink()
	return x, true
}

// Front returns the element at the front of the queue.
func (d *Deque[T]) Front() (_ T, ok bool) {
	return d.Get(0)
}

// Back returns the element at the back of the queue.
func (d *Deque[T]) Back() (_ T, ok bool) {
	return d.Get(d.n - 1)
}

// PopFront removes the element at the front of the queue and returns it.
func (d *Deque[T]) PopFront() (_ T, ok bool) {
	return d.Remove(0)
}

// PopBack removes the element at the back of the queue and returns it.
func (d *Deque[T]) PopBack() (_ T, ok bool) {
	return d.Remove(d.n - 1)
}

// Append inserts an element at the back of the queue.
func (d *Deque[T]) Append(x T) {
	d.Add(d.n, x)
}

// Filter removes every element for which pred returns false,
// keeping the relative order of the rest.
func (d *Deque[T]) Filter(pred func(T) bool) {
	if d.n == 0 {
		return
	}
	kept := 0
	for i := 0; i < d.n; i++ {
		x, _ := d.array.Take(d.physical(i))
		if pred(x) {
			d.array.Set(d.physical(kept), x)
			kept++
		}
	}
	d.n = kept
	d.shrink()
}

// Rotate rotates the deque n places to the left,
// such that the n'th item will be at the front of the deque.
// Negative values rotate the deque to the right.
func (d *Deque[T]) Rotate(n int) {
	if d.n == 0 {
		return
	}
	n = slots.WrapIndex(n, d.n)
	if n == 0 {
		return
	}
	k := d.n - n
	if n <= k {
		d.rotateLeft(n)
	} else {
		d.rotateRight(k)
	}
}

func (d *Deque[T]) rotateLeft(mid int) {
	c := d.array.Len()
	d.array.WrapCopy(d.physical(d.n), d.front, mid)
	// Slots the moved run left behind, unless the run wrapped onto them.
	for j := max(0, d.n+mid-c); j < mid; j++ {
		d.array.Take(d.physical(j))
	}
	d.front = d.physical(mid)
}

func (d *Deque[T]) rotateRight(k int) {
	c := d.array.Len()
	src := d.physical(d.n - k)
	d.front = slots.WrapIndex(d.front-k, c)
	d.array.WrapCopy(d.front, src, k)
	for j := 0; j < min(k, c-d.n); j++ {
		d.array.Take(slots.WrapIndex(src+j, c))
	}
}

func (d *Deque[T]) shrink() {
	if d.array.Len() >= 3*d.n {
		d.resize()
	}
}

// resize moves the elements into a new array of twice the number of elements,
// starting at index 0.
func (d *Deque[T]) resize() {
	newArray := slots.Make[T](max(2*d.n, 1))
	split := min(d.n, d.array.Len()-d.front)
	slots.Copy(newArray, 0, d.array, d.front, split)
	slots.Copy(newArray, split, d.array, 0, d.n-split)
	d.array = newArray
	d.front = 0
}
