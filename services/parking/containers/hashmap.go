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

// hashNode is a single entry in a bucket chain.
type hashNode[K ~string, V any] struct {
	key   K
	value V
	next  *hashNode[K, V]
}

// Pair is a key-value pair returned by HashMap.Items.
type Pair[K ~string, V any] struct {
	Key   K
	Value V
}

// HashMap is a chained hash map with a fixed bucket count.
//
// # Description
//
// Keys hash to a bucket by summing the key's byte values modulo the bucket
// count. The function is deliberately simple, not cryptographic; collisions
// are expected and resolved by chaining. New entries are prepended to their
// bucket's chain, so enumeration order is bucket-major, chain-minor
// (insertion-reverse within a bucket) and must not be relied upon.
//
// # Performance
//
//	| Operation          | Complexity            |
//	|--------------------|-----------------------|
//	| Insert/Get/Delete  | O(1) avg, O(n) worst  |
//	| Keys/Values/Items  | O(buckets + n)        |
//	| Len                | O(1)                  |
type HashMap[K ~string, V any] struct {
	buckets []*hashNode[K, V]
	size    int
}

// NewHashMap creates a hash map with the given bucket count.
//
// A non-positive bucket count falls back to 100 buckets.
func NewHashMap[K ~string, V any](buckets int) *HashMap[K, V] {
	if buckets <= 0 {
		buckets = 100
	}
	return &HashMap[K, V]{
		buckets: make([]*hashNode[K, V], buckets),
	}
}

// hash sums the key's byte values modulo the bucket count.
func (m *HashMap[K, V]) hash(key K) int {
	s := string(key)
	sum := 0
	for i := 0; i < len(s); i++ {
		sum += int(s[i])
	}
	return sum % len(m.buckets)
}

// Insert adds or updates a key-value pair.
//
// If the key exists anywhere in its bucket chain, the value is updated in
// place; otherwise a new node is prepended to the chain.
func (m *HashMap[K, V]) Insert(key K, value V) {
	idx := m.hash(key)
	for cur := m.buckets[idx]; cur != nil; cur = cur.next {
		if cur.key == key {
			cur.value = value
			return
		}
	}
	m.buckets[idx] = &hashNode[K, V]{key: key, value: value, next: m.buckets[idx]}
	m.size++
}

// Get returns the value for key and whether it was present.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	for cur := m.buckets[m.hash(key)]; cur != nil; cur = cur.next {
		if cur.key == key {
			return cur.value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *HashMap[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes a key-value pair. Returns false if the key was absent.
func (m *HashMap[K, V]) Delete(key K) bool {
	idx := m.hash(key)
	var prev *hashNode[K, V]
	for cur := m.buckets[idx]; cur != nil; cur = cur.next {
		if cur.key == key {
			if prev == nil {
				m.buckets[idx] = cur.next
			} else {
				prev.next = cur.next
			}
			m.size--
			return true
		}
		prev = cur
	}
	return false
}

// Keys returns all keys in enumeration order.
//
// Order is bucket-major, chain-minor and is not stable across
// insert/delete sequences.
func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, bucket := range m.buckets {
		for cur := bucket; cur != nil; cur = cur.next {
			keys = append(keys, cur.key)
		}
	}
	return keys
}

// Values returns all values in enumeration order.
func (m *HashMap[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for _, bucket := range m.buckets {
		for cur := bucket; cur != nil; cur = cur.next {
			values = append(values, cur.value)
		}
	}
	return values
}

// Items returns all key-value pairs in enumeration order.
func (m *HashMap[K, V]) Items() []Pair[K, V] {
	items := make([]Pair[K, V], 0, m.size)
	for _, bucket := range m.buckets {
		for cur := bucket; cur != nil; cur = cur.next {
			items = append(items, Pair[K, V]{Key: cur.key, Value: cur.value})
		}
	}
	return items
}

// Len returns the number of distinct keys currently present.
func (m *HashMap[K, V]) Len() int {
	return m.size
}

// Clear removes all entries, keeping the bucket count.
func (m *HashMap[K, V]) Clear() {
	m.buckets = make([]*hashNode[K, V], len(m.buckets))
	m.size = 0
}
