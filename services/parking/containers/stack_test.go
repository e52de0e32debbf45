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

func TestStack_PushPopLIFO(t *testing.T) {
	s := NewStack[string](10)

	require.NoError(t, s.Push("first"))
	require.NoError(t, s.Push("second"))
	require.NoError(t, s.Push("third"))

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, "third", v)

	v, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, "second", v)

	v, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, "first", v)

	_, ok = s.Pop()
	assert.False(t, ok, "empty stack pops absent, not an error")
}

func TestStack_PushAtCapacityFails(t *testing.T) {
	s := NewStack[int](2)

	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))

	err := s.Push(3)
	require.ErrorIs(t, err, ErrStackFull)
	assert.Equal(t, 2, s.Len(), "failed push must not mutate the stack")

	// Contents stay intact after the refused push.
	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestStack_PeekDoesNotMutate(t *testing.T) {
	s := NewStack[int](4)

	_, ok := s.Peek()
	assert.False(t, ok)

	require.NoError(t, s.Push(7))
	v, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, s.Len())
}

func TestStack_RecentMostRecentFirst(t *testing.T) {
	s := NewStack[int](8)
	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Push(i))
	}

	assert.Equal(t, []int{5, 4, 3}, s.Recent(3))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, s.Recent(10), "n beyond depth clamps")
	assert.Nil(t, s.Recent(0))
	assert.Equal(t, 5, s.Len(), "Recent must not consume items")
}

func TestStack_Clear(t *testing.T) {
	s := NewStack[int](4)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 4, s.Cap())
}
