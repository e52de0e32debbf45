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

// listNode is a node in a singly linked list.
type listNode[T comparable] struct {
	data T
	next *listNode[T]
}

// LinkedList is a singly linked list without a tail pointer.
//
// # Description
//
// Append walks to the tail and is O(n); the list trades a tail pointer for
// simplicity since area counts per zone stay small. Duplicates may coexist;
// Delete removes only the first occurrence encountered from the head.
type LinkedList[T comparable] struct {
	head *listNode[T]
	size int
}

// NewLinkedList creates an empty list.
func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Append adds data at the tail. O(n).
func (l *LinkedList[T]) Append(data T) {
	node := &listNode[T]{data: data}
	if l.head == nil {
		l.head = node
	} else {
		cur := l.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = node
	}
	l.size++
}

// Prepend adds data at the head. O(1).
func (l *LinkedList[T]) Prepend(data T) {
	l.head = &listNode[T]{data: data, next: l.head}
	l.size++
}

// Delete removes the first node equal to data, scanning from the head.
// Returns false if no match was found.
func (l *LinkedList[T]) Delete(data T) bool {
	if l.head == nil {
		return false
	}
	if l.head.data == data {
		l.head = l.head.next
		l.size--
		return true
	}
	for cur := l.head; cur.next != nil; cur = cur.next {
		if cur.next.data == data {
			cur.next = cur.next.next
			l.size--
			return true
		}
	}
	return false
}

// Search reports whether data is present. O(n).
func (l *LinkedList[T]) Search(data T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.data == data {
			return true
		}
	}
	return false
}

// All returns every element head to tail.
func (l *LinkedList[T]) All() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.data)
	}
	return out
}

// Each calls fn for every element head to tail, stopping early if fn
// returns false.
func (l *LinkedList[T]) Each(fn func(T) bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if !fn(cur.data) {
			return
		}
	}
}

// Len returns the number of elements.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// Clear removes all elements.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.size = 0
}
