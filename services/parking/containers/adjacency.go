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

// adjNode is a node in the adjacency list.
type adjNode struct {
	zoneID string
	next   *adjNode
}

// AdjacencyList holds the neighbor zone ids of a single zone.
//
// # Description
//
// Insertion is always at the head, so iteration order is
// most-recently-added first. Duplicate inserts are refused by an explicit
// membership check; self-loops are not prevented. Edges are one-sided:
// symmetry requires adding both directions.
type AdjacencyList struct {
	head  *adjNode
	count int
}

// NewAdjacencyList creates an empty adjacency list.
func NewAdjacencyList() *AdjacencyList {
	return &AdjacencyList{}
}

// Add inserts zoneID at the head. Returns false if already present.
func (a *AdjacencyList) Add(zoneID string) bool {
	if a.Contains(zoneID) {
		return false
	}
	a.head = &adjNode{zoneID: zoneID, next: a.head}
	a.count++
	return true
}

// Remove deletes zoneID. Returns false if absent.
func (a *AdjacencyList) Remove(zoneID string) bool {
	if a.head == nil {
		return false
	}
	if a.head.zoneID == zoneID {
		a.head = a.head.next
		a.count--
		return true
	}
	for cur := a.head; cur.next != nil; cur = cur.next {
		if cur.next.zoneID == zoneID {
			cur.next = cur.next.next
			a.count--
			return true
		}
	}
	return false
}

// Contains reports whether zoneID is adjacent.
func (a *AdjacencyList) Contains(zoneID string) bool {
	for cur := a.head; cur != nil; cur = cur.next {
		if cur.zoneID == zoneID {
			return true
		}
	}
	return false
}

// Zones returns all neighbor ids, most-recently-added first.
func (a *AdjacencyList) Zones() []string {
	out := make([]string, 0, a.count)
	for cur := a.head; cur != nil; cur = cur.next {
		out = append(out, cur.zoneID)
	}
	return out
}

// Len returns the number of neighbors.
func (a *AdjacencyList) Len() int {
	return a.count
}
