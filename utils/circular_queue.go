package utils

import "iter"

// CircularQueue is a fixed capacity FIFO. Appending to a full queue overwrites the oldest item,
// which makes it a sliding window over the most recent values.
type CircularQueue[T any] struct {
	items []T
	head  int
	size  int
}

// NewCircularQueue returns an empty queue holding at most capacity items. A capacity below one is
// raised to one.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{items: make([]T, max(capacity, 1))}
}

// Append adds item as the newest element, dropping the oldest one if the queue is full.
func (q *CircularQueue[T]) Append(item T) {
	q.items[(q.head+q.size)%len(q.items)] = item
	if q.size == len(q.items) {
		q.head = (q.head + 1) % len(q.items)
		return
	}
	q.size++
}

// Len returns the amount of items in the queue.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Iter yields the items from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range q.size {
			if !yield(q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Values returns a copy of the items from oldest to newest.
func (q *CircularQueue[T]) Values() []T {
	values := make([]T, 0, q.size)
	for v := range q.Iter() {
		values = append(values, v)
	}
	return values
}

