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

func TestArray_AppendWithinCapacity(t *testing.T) {
	a := NewArray[string](3)

	require.NoError(t, a.Append("s1"))
	require.NoError(t, a.Append("s2"))

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 3, a.Cap())
	assert.Equal(t, []string{"s1", "s2"}, a.All())
}

func TestArray_AppendBeyondCapacityFails(t *testing.T) {
	a := NewArray[int](2)
	require.NoError(t, a.Append(1))
	require.NoError(t, a.Append(2))

	err := a.Append(3)
	require.ErrorIs(t, err, ErrArrayFull)
	assert.Equal(t, 2, a.Len(), "failed append must not mutate the array")
}

func TestArray_GetBoundsChecked(t *testing.T) {
	a := NewArray[int](4)
	require.NoError(t, a.Append(10))

	v, ok := a.Get(0)
	require.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = a.Get(1)
	assert.False(t, ok, "index within capacity but beyond size is out of range")
	_, ok = a.Get(-1)
	assert.False(t, ok)
}

func TestArray_Find(t *testing.T) {
	a := NewArray[string](4)
	require.NoError(t, a.Append("a"))
	require.NoError(t, a.Append("b"))

	assert.Equal(t, 1, a.Find("b"))
	assert.Equal(t, -1, a.Find("missing"))
}

func TestArray_EachStopsEarly(t *testing.T) {
	a := NewArray[int](5)
	for i := 1; i <= 4; i++ {
		require.NoError(t, a.Append(i))
	}

	var seen []int
	a.Each(func(v int) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})
	assert.Equal(t, []int{1, 2}, seen)
}
