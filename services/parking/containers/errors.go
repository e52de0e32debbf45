// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package containers implements the fixed-capacity data structures that back
// every lookup and ordering decision in the parking service: a chained hash
// map, a singly linked list, an array-backed stack, a circular-buffer queue,
// a bounded array, and a zone adjacency list.
//
// # Description
//
// All domain components store their state exclusively in these containers.
// Capacities are fixed at construction and capacity exhaustion is reported
// to the caller as a sentinel error, never as a panic.
//
// # Thread Safety
//
// Containers are NOT internally synchronized. The owning aggregate holds a
// single mutex across every mutating operation (see core.System), which is
// the locking boundary for the whole service.
package containers

import "errors"

// Sentinel errors for capacity exhaustion. Callers must treat these as
// recoverable signals, not failures of the containing operation.
var (
	// ErrArrayFull is returned by Array.Append at capacity.
	ErrArrayFull = errors.New("array is full")

	// ErrStackFull is returned by Stack.Push at capacity.
	ErrStackFull = errors.New("stack is full")

	// ErrQueueFull is returned by Queue.Enqueue at capacity.
	ErrQueueFull = errors.New("queue is full")
)
