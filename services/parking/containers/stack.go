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

// Stack is a bounded array-backed LIFO stack.
//
// # Description
//
// Backs the rollback operation history. Push fails with ErrStackFull at
// capacity; the rollback manager treats that as "history depth exceeded"
// and drops the record rather than aborting the operation it accompanies.
// Pop and Peek report emptiness through their boolean result instead of an
// error.
type Stack[T any] struct {
	items []T
	top   int
}

// NewStack creates a stack with the given capacity.
//
// A non-positive capacity falls back to 100.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		capacity = 100
	}
	return &Stack[T]{items: make([]T, capacity), top: -1}
}

// Push places item on top. Returns ErrStackFull at capacity.
func (s *Stack[T]) Push(item T) error {
	if s.top >= len(s.items)-1 {
		return fmt.Errorf("%w (capacity %d)", ErrStackFull, len(s.items))
	}
	s.top++
	s.items[s.top] = item
	return nil
}

// Pop removes and returns the top item. The boolean is false when empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.top < 0 {
		var zero T
		return zero, false
	}
	item := s.items[s.top]
	var zero T
	s.items[s.top] = zero
	s.top--
	return item, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.top < 0 {
		var zero T
		return zero, false
	}
	return s.items[s.top], true
}

// Recent returns up to n items, most recent first, without mutation.
func (s *Stack[T]) Recent(n int) []T {
	if n <= 0 || s.top < 0 {
		return nil
	}
	count := n
	if depth := s.top + 1; count > depth {
		count = depth
	}
	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, s.items[s.top-i])
	}
	return out
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return s.top < 0
}

// Len returns the current depth.
func (s *Stack[T]) Len() int {
	return s.top + 1
}

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int {
	return len(s.items)
}

// Clear removes all items.
func (s *Stack[T]) Clear() {
	var zero T
	for i := 0; i <= s.top; i++ {
		s.items[i] = zero
	}
	s.top = -1
}
