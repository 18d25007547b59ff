// Package dualdeque provides a double-ended list
// built from two array stacks placed back to back.
package dualdeque

import "zombiezen.com/go/arrayseq/arraystack"

// Deque is a list stored in two stacks:
// front holds the first elements in reverse order
// and back holds the remaining elements in order.
// Adding or removing at either end is amortized O(1),
// and adding or removing at position i costs O(min(i, Len()-i)).
// The zero value is an empty deque.
type Deque[T any] struct {
	front arraystack.Stack[T]
	back  arraystack.Stack[T]
}

// New returns an empty deque whose two stacks
// share the given capacity between them.
// New panics if capacity is negative.
func New[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		panic("dualdeque: negative capacity")
	}
	nf := capacity / 2
	return &Deque[T]{
		front: *arraystack.New[T](nf),
		back:  *arraystack.New[T](capacity - nf),
	}
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.front.Len() + d.back.Len()
}

// Cap returns the combined capacity of the two backing arrays.
func (d *Deque[T]) Cap() int {
	return d.front.Cap() + d.back.Cap()
}

// Get returns the element at index i.
// ok is false if i is not in [0, d.Len()).
func (d *Deque[T]) Get(i int) (_ T, ok bool) {
	nf := d.front.Len()
	if i < nf {
		return d.front.Get(nf - i - 1)
	}
	return d.back.Get(i - nf)
}

// Set replaces the element at index i with x
// and returns the element it replaced.
// If i is not in [0, d.Len()), Set does nothing and returns false.
func (d *Deque[T]) Set(i int, x T) (prev T, ok bool) {
	nf := d.front.Len()
	if i < nf {
		return d.front.Set(nf-i-1, x)
	}
	return d.back.Set(i-nf, x)
}

// Add inserts x at index i.
// It reports whether i was in [0, d.Len()];
// for any other index the deque is left unchanged.
func (d *Deque[T]) Add(i int, x T) bool {
	if i < 0 || i > d.Len() {
		return false
	}
	if nf := d.front.Len(); i < nf {
		d.front.Add(nf-i, x)
	} else {
		d.back.Add(i-nf, x)
	}
	d.balance()
	return true
}

// Remove removes the element at index i and returns it.
// ok is false if i is not in [0, d.Len()).
func (d *Deque[T]) Remove(i int) (_ T, ok bool) {
	var x T
	if nf := d.front.Len(); i < nf {
		x, ok = d.front.Remove(nf - i - 1)
	} else {
		x, ok = d.back.Remove(i - nf)
	}
	if ok {
		d.balance()
	}
	return x, ok
}

// balance redistributes the elements evenly between the two stacks
// when one of them holds more than three times as many as the other.
func (d *Deque[T]) balance() {
	nf, nb := d.front.Len(), d.back.Len()
	if 3*nf >= nb && 3*nb >= nf {
		return
	}
	n := nf + nb
	nf = n / 2
	nb = n - nf
	front := arraystack.New[T](max(2*nf, 1))
	for i := nf - 1; i >= 0; i-- {
		x, _ := d.Get(i)
		front.Push(x)
	}
	back := arraystack.New[T](max(2*nb, 1))
	for i := nf; i < n; i++ {
		x, _ := d.Get(i)
		back.Push(x)
	}
	d.front = *front
	d.back = *back
}
