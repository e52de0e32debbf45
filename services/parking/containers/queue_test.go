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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewQueue[string](4)

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	require.NoError(t, q.Enqueue("c"))

	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = q.Dequeue()
	assert.False(t, ok, "empty queue dequeues absent, not an error")
}

func TestQueue_EnqueueAtCapacityFails(t *testing.T) {
	q := NewQueue[int](2)

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))

	err := q.Enqueue(3)
	require.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, []int{1, 2}, q.All(), "failed enqueue must not mutate the queue")
}

// The buffer must wrap: after interleaved enqueue/dequeue beyond the
// capacity, ordering stays front-to-rear.
func TestQueue_CircularWraparound(t *testing.T) {
	q := NewQueue[int](3)

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))

	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	require.NoError(t, q.Enqueue(4)) // wraps to index 0

	assert.Equal(t, []int{2, 3, 4}, q.All())
	assert.Equal(t, 3, q.Len())

	v, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestQueue_AllDoesNotMutate(t *testing.T) {
	q := NewQueue[int](4)
	require.NoError(t, q.Enqueue(10))
	require.NoError(t, q.Enqueue(20))

	assert.Equal(t, []int{10, 20}, q.All())
	assert.Equal(t, []int{10, 20}, q.All(), "second call must see identical contents")
	assert.Equal(t, 2, q.Len())

	front, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 10, front)
}

func TestQueue_Clear(t *testing.T) {
	q := NewQueue[int](3)
	require.NoError(t, q.Enqueue(1))

	q.Clear()
	assert.True(t, q.IsEmpty())
	assert.Empty(t, q.All())

	// Still usable after clear.
	require.NoError(t, q.Enqueue(9))
	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 9, v)
}
