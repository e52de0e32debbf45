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

// Array is a fixed-capacity ordered sequence.
//
// # Description
//
// Backs the slot storage of a parking area. Capacity is immutable after
// construction; Append beyond capacity fails with ErrArrayFull. Indexed
// access is bounds-checked against the current size, not the capacity.
type Array[T comparable] struct {
	items []T
	size  int
}

// NewArray creates an array with the given capacity.
//
// A non-positive capacity falls back to 100.
func NewArray[T comparable](capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = 100
	}
	return &Array[T]{items: make([]T, capacity)}
}

// Append adds item at the end. Returns ErrArrayFull at capacity.
func (a *Array[T]) Append(item T) error {
	if a.size >= len(a.items) {
		return fmt.Errorf("%w (capacity %d)", ErrArrayFull, len(a.items))
	}
	a.items[a.size] = item
	a.size++
	return nil
}

// Get returns the item at index and whether the index was in range.
func (a *Array[T]) Get(index int) (T, bool) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, false
	}
	return a.items[index], true
}

// Find returns the index of the first element equal to item, or -1.
func (a *Array[T]) Find(item T) int {
	for i := 0; i < a.size; i++ {
		if a.items[i] == item {
			return i
		}
	}
	return -1
}

// All returns every element in insertion order.
func (a *Array[T]) All() []T {
	out := make([]T, a.size)
	copy(out, a.items[:a.size])
	return out
}

// Each calls fn for every element in insertion order, stopping early if fn
// returns false.
func (a *Array[T]) Each(fn func(T) bool) {
	for i := 0; i < a.size; i++ {
		if !fn(a.items[i]) {
			return
		}
	}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the fixed capacity.
func (a *Array[T]) Cap() int {
	return len(a.items)
}
