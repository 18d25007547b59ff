// Package linkedlist provides singly and doubly linked lists
// with the same positional surface as the array-backed sequences.
package linkedlist

// SList is a singly linked list with head and tail pointers.
// It can be used as a stack (Push and Pop) or as a queue (Add and Remove).
// The zero value is an empty list.
type SList[T any] struct {
	head *snode[T]
	tail *snode[T]
	n    int
}

type snode[T any] struct {
	x    T
	next *snode[T]
}

// Len returns the number of elements in the list.
func (l *SList[T]) Len() int {
	return l.n
}

// Push inserts x at the head of the list.
func (l *SList[T]) Push(x T) {
	u := &snode[T]{x: x, next: l.head}
	l.head = u
	if l.n == 0 {
		l.tail = u
	}
	l.n++
}

// Pop removes and returns the element at the head of the list.
// ok is false if the list is empty.
func (l *SList[T]) Pop() (_ T, ok bool) {
	return l.Remove()
}

// Add appends x at the tail of the list.
func (l *SList[T]) Add(x T) {
	u := &snode[T]{x: x}
	if l.n == 0 {
		l.head = u
	} else {
		l.tail.next = u
	}
	l.tail = u
	l.n++
}

// Remove removes and returns the element at the head of the list.
// ok is false if the list is empty.
func (l *SList[T]) Remove() (_ T, ok bool) {
	if l.n == 0 {
		var zero T
		return zero, false
	}
	u := l.head
	l.head = u.next
	u.next = nil
	l.n--
	if l.n == 0 {
		l.tail = nil
	}
	return u.x, true
}

// Front returns the element at the head of the list without removing it.
func (l *SList[T]) Front() (_ T, ok bool) {
	if l.n == 0 {
		var zero T
		return zero, false
	}
	return l.head.x, true
}

// Get returns the element at index i in O(i) time.
// ok is false if i is not in [0, l.Len()).
func (l *SList[T]) Get(i int) (_ T, ok bool) {
	u := l.node(i)
	if u == nil {
		var zero T
		return zero, false
	}
	return u.x, true
}

// Set replaces the element at index i with x
// and returns the element it replaced.
// If i is not in [0, l.Len()), Set does nothing and returns false.
func (l *SList[T]) Set(i int, x T) (prev T, ok bool) {
	u := l.node(i)
	if u == nil {
		return prev, false
	}
	prev, u.x = u.x, x
	return prev, true
}

func (l *SList[T]) node(i int) *snode[T] {
	if i < 0 || i >= l.n {
		return nil
	}
	if i == l.n-1 {
		return l.tail
	}
	u := l.head
	for ; i > 0; i-- {
		u = u.next
	}
	return u
}
