// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package containers

import "fmt"

// Queue is a bounded FIFO queue over a circular buffer.
//
// # Description
//
// Backs the pending-request buffer. Enqueue fails with ErrQueueFull at
// capacity; Dequeue and Peek report emptiness through their boolean result.
// All returns the contents front to rear without mutating the queue.
type Queue[T any] struct {
	items []T
	front int
	rear  int
	count int
}

// NewQueue creates a queue with the given capacity.
//
// A non-positive capacity falls back to 100.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		capacity = 100
	}
	return &Queue[T]{items: make([]T, capacity), rear: -1}
}

// Enqueue adds item at the rear. Returns ErrQueueFull at capacity.
func (q *Queue[T]) Enqueue(item T) error {
	if q.count >= len(q.items) {
		return fmt.Errorf("%w (capacity %d)", ErrQueueFull, len(q.items))
	}
	q.rear = (q.rear + 1) % len(q.items)
	q.items[q.rear] = item
	q.count++
	return nil
}

// Dequeue removes and returns the front item. The boolean is false when
// empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	item := q.items[q.front]
	var zero T
	q.items[q.front] = zero
	q.front = (q.front + 1) % len(q.items)
	q.count--
	return item, true
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.items[q.front], true
}

// All returns the contents front to rear without mutation.
func (q *Queue[T]) All() []T {
	out := make([]T, 0, q.count)
	idx := q.front
	for i := 0; i < q.count; i++ {
		out = append(out, q.items[idx])
		idx = (idx + 1) % len(q.items)
	}
	return out
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.count == 0
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return q.count
}

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int {
	return len(q.items)
}

// Clear removes all items.
func (q *Queue[T]) Clear() {
	var zero T
	for i := range q.items {
		q.items[i] = zero
	}
	q.front = 0
	q.rear = -1
	q.count = 0
}
