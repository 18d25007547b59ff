package deque

// Queue is a first-in, first-out queue stored in a circular array.
// Add and Remove are amortized O(1).
// The zero value is an empty queue.
type Queue[T any] struct {
	d Deque[T]
}

// NewQueue returns an empty queue with the given backing capacity.
// NewQueue panics if capacity is negative.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{d: *New[T](capacity)}
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.d.Len()
}

// Cap returns the capacity of the backing array.
func (q *Queue[T]) Cap() int {
	return q.d.Cap()
}

// Get returns the element at index i, with 0 being the oldest element.
func (q *Queue[T]) Get(i int) (_ T, ok bool) {
	return q.d.Get(i)
}

// Set replaces the element at index i with x
// and returns the element it replaced.
func (q *Queue[T]) Set(i int, x T) (prev T, ok bool) {
	return q.d.Set(i, x)
}

// Add appends x to the back of the queue.
// It always returns true.
func (q *Queue[T]) Add(x T) bool {
	q.d.Append(x)
	return true
}

// Remove removes the element at the front of the queue and returns it.
// ok is false if the queue is empty.
func (q *Queue[T]) Remove() (_ T, ok bool) {
	return q.d.PopFront()
}
