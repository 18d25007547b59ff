package linkedlist

import (
	"errors"
	"fmt"
)

// ErrInvalidNode is returned when a Node does not refer
// to a live node of the list it was passed to.
var ErrInvalidNode = errors.New("invalid node")

// DList is a doubly linked list.
// Its nodes are stored in an arena owned by the list
// and are linked by arena index,
// with a single sentinel node at index 0 closing the cycle.
// Removed nodes are recycled by later insertions.
// The zero value is an empty list.
type DList[T any] struct {
	nodes []dnode[T]
	// free is the index of the first recycled slot, or 0 if there is none.
	// Recycled slots are chained through their next field.
	free int
	n    int
}

type dnode[T any] struct {
	x    T
	prev int
	next int
	gen  uint64
	live bool
}

// Node is a handle to a node in a DList.
// A Node stays valid until the node it refers to is removed.
// The zero Node is not valid for any list.
type Node[T any] struct {
	list  *DList[T]
	index int
	gen   uint64
}

func (l *DList[T]) init() {
	if l.nodes == nil {
		l.nodes = []dnode[T]{{live: true}}
	}
}

// Len returns the number of elements in the list.
func (l *DList[T]) Len() int {
	return l.n
}

// Cap returns the number of node slots allocated in the arena,
// not counting the sentinel.
func (l *DList[T]) Cap() int {
	return max(len(l.nodes)-1, 0)
}

// NodeAt returns the node at index i,
// walking from whichever end of the list is nearer.
// NodeAt(l.Len()) returns the sentinel that follows the last element,
// which may be passed to AddBefore to append.
// ok is false if i is not in [0, l.Len()].
func (l *DList[T]) NodeAt(i int) (_ Node[T], ok bool) {
	if i < 0 || i > l.n {
		return Node[T]{}, false
	}
	l.init()
	var p int
	if i < l.n/2 {
		p = l.nodes[0].next
		for ; i > 0; i-- {
			p = l.nodes[p].next
		}
	} else {
		for j := l.n; j > i; j-- {
			p = l.nodes[p].prev
		}
	}
	return l.handle(p), true
}

// Value returns the element stored in w.
func (l *DList[T]) Value(w Node[T]) (T, error) {
	if err := l.checkElement(w); err != nil {
		var zero T
		return zero, fmt.Errorf("linkedlist: value: %w", err)
	}
	return l.nodes[w.index].x, nil
}

// AddBefore inserts x immediately before w and returns the new node.
// w may be the sentinel returned by NodeAt(l.Len()).
func (l *DList[T]) AddBefore(w Node[T], x T) (Node[T], error) {
	if err := l.check(w); err != nil {
		return Node[T]{}, fmt.Errorf("linkedlist: add before: %w", err)
	}
	u := l.alloc(x)
	v := l.nodes[w.index].prev
	l.nodes[u].prev = v
	l.nodes[u].next = w.index
	l.nodes[v].next = u
	l.nodes[w.index].prev = u
	l.n++
	return l.handle(u), nil
}

// RemoveNode unlinks w from the list and returns its element.
// w and any copies of it are no longer valid afterward.
func (l *DList[T]) RemoveNode(w Node[T]) (T, error) {
	if err := l.checkElement(w); err != nil {
		var zero T
		return zero, fmt.Errorf("linkedlist: remove node: %w", err)
	}
	u := &l.nodes[w.index]
	x := u.x
	l.nodes[u.prev].next = u.next
	l.nodes[u.next].prev = u.prev
	l.release(w.index)
	l.n--
	return x, nil
}

// Get returns the element at index i.
// ok is false if i is not in [0, l.Len()).
func (l *DList[T]) Get(i int) (_ T, ok bool) {
	if i < 0 || i >= l.n {
		var zero T
		return zero, false
	}
	w, _ := l.NodeAt(i)
	return l.nodes[w.index].x, true
}

// Set replaces the element at index i with x
// and returns the element it replaced.
// If i is not in [0, l.Len()), Set does nothing and returns false.
func (l *DList[T]) Set(i int, x T) (prev T, ok bool) {
	if i < 0 || i >= l.n {
		return prev, false
	}
	w, _ := l.NodeAt(i)
	u := &l.nodes[w.index]
	prev, u.x = u.x, x
	return prev, true
}

// Add inserts x at index i.
// It reports whether i was in [0, l.Len()];
// for any other index the list is left unchanged.
func (l *DList[T]) Add(i int, x T) bool {
	w, ok := l.NodeAt(i)
	if !ok {
		return false
	}
	_, err := l.AddBefore(w, x)
	return err == nil
}

// Remove removes the element at index i and returns it.
// ok is false if i is not in [0, l.Len()).
func (l *DList[T]) Remove(i int) (_ T, ok bool) {
	if i < 0 || i >= l.n {
		var zero T
		return zero, false
	}
	w, _ := l.NodeAt(i)
	x, err := l.RemoveNode(w)
	return x, err == nil
}

func (l *DList[T]) handle(i int) Node[T] {
	return Node[T]{list: l, index: i, gen: l.nodes[i].gen}
}

// check reports whether w refers to a live node of l, including the sentinel.
func (l *DList[T]) check(w Node[T]) error {
	if w.list != l {
		return fmt.Errorf("node belongs to another list: %w", ErrInvalidNode)
	}
	if w.index < 0 || w.index >= len(l.nodes) {
		return ErrInvalidNode
	}
	if u := &l.nodes[w.index]; !u.live || u.gen != w.gen {
		return fmt.Errorf("node was removed: %w", ErrInvalidNode)
	}
	return nil
}

// checkElement is like check, but rejects the sentinel.
func (l *DList[T]) checkElement(w Node[T]) error {
	if err := l.check(w); err != nil {
		return err
	}
	if w.index == 0 {
		return fmt.Errorf("end of list: %w", ErrInvalidNode)
	}
	return nil
}

func (l *DList[T]) alloc(x T) int {
	l.init()
	i := l.free
	if i == 0 {
		l.nodes = append(l.nodes, dnode[T]{})
		i = len(l.nodes) - 1
	} else {
		l.free = l.nodes[i].next
	}
	u := &l.nodes[i]
	u.x = x
	u.live = true
	return i
}

func (l *DList[T]) release(i int) {
	l.nodes[i] = dnode[T]{
		next: l.free,
		gen:  l.nodes[i].gen + 1,
	}
	l.free = i
}
