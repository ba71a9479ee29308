/*
Package deque provides the FIFO collector used by EnumerateKeywords: as
the arena traversal (driven by the stack package) visits terminal nodes
in an arbitrary order, results are appended at the tail here and drained
from the head to build the returned slice, keeping the traversal and the
result-collection concerns separate. Backed by linkedlist for O(1)
operations at both ends.
*/
package deque

import "github.com/Zubayear/textrush/internal/container/linkedlist"

// Deque is a generic append-at-tail, drain-from-head collector.
type Deque[T any] struct {
	data *linkedlist.DoublyLinkedList[T]
}

// New creates an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{data: linkedlist.New[T]()}
}

// PushBack appends val at the tail.
func (d *Deque[T]) PushBack(val T) {
	d.data.AddLast(val)
}

// PopFront removes and returns the element at the head.
func (d *Deque[T]) PopFront() (T, error) {
	return d.data.RemoveFirst()
}

// Size returns the number of elements currently held.
func (d *Deque[T]) Size() int {
	return d.data.Size()
}

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.data.IsEmpty()
}

// Drain removes every element in FIFO order and returns them as a slice.
func (d *Deque[T]) Drain() []T {
	out := make([]T, 0, d.Size())
	for !d.IsEmpty() {
		v, _ := d.PopFront()
		out = append(out, v)
	}
	return out
}
