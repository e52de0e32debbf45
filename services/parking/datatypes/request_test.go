// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest() *ParkingRequest {
	return NewParkingRequest("REQ_0001", "CAR-123", "ZONE_A", time.Now())
}

func TestRequestState_TransitionTable(t *testing.T) {
	cases := []struct {
		from  RequestState
		to    RequestState
		legal bool
	}{
		{StateRequested, StateAllocated, true},
		{StateRequested, StateCancelled, true},
		{StateRequested, StateOccupied, false},
		{StateRequested, StateReleased, false},
		{StateAllocated, StateOccupied, true},
		{StateAllocated, StateCancelled, true},
		{StateAllocated, StateReleased, false},
		{StateAllocated, StateRequested, false},
		{StateOccupied, StateReleased, true},
		{StateOccupied, StateCancelled, false},
		{StateOccupied, StateAllocated, false},
		{StateReleased, StateRequested, false},
		{StateReleased, StateCancelled, false},
		{StateCancelled, StateRequested, false},
		{StateCancelled, StateAllocated, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.legal, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestParkingRequest_HappyPathLifecycle(t *testing.T) {
	r := newTestRequest()
	assert.Equal(t, StateRequested, r.State)
	assert.Equal(t, []RequestState{StateRequested}, r.StateHistory)

	now := time.Now()
	require.True(t, r.Allocate("AREA_A1_SLOT_1", "ZONE_A", now))
	assert.Equal(t, StateAllocated, r.State)
	assert.Equal(t, "AREA_A1_SLOT_1", r.AllocatedSlot)
	assert.Equal(t, "ZONE_A", r.AllocatedZone)
	require.NotNil(t, r.AllocationTime)
	assert.Zero(t, r.Penalty, "same-zone allocation carries no penalty")

	require.True(t, r.Occupy(now.Add(time.Minute)))
	require.True(t, r.Release(now.Add(2*time.Hour)))

	assert.Equal(t, StateReleased, r.State)
	assert.True(t, r.IsCompleted())
	assert.Len(t, r.StateHistory, 4)
	assert.InDelta(t, (2*time.Hour - time.Minute).Seconds(), r.Duration().Seconds(), 0.001)
}

func TestParkingRequest_CrossZonePenaltyAppliedOnce(t *testing.T) {
	r := newTestRequest()

	require.True(t, r.Allocate("AREA_B1_SLOT_1", "ZONE_B", time.Now()))
	assert.Equal(t, CrossZonePenalty, r.Penalty)

	// A later transition must not touch the penalty.
	require.True(t, r.Occupy(time.Now()))
	assert.Equal(t, CrossZonePenalty, r.Penalty)
}

// Every rejected transition must leave state, history length, timestamps,
// and allocation fields untouched.
func TestParkingRequest_RejectedTransitionMutatesNothing(t *testing.T) {
	t.Run("occupy from REQUESTED", func(t *testing.T) {
		r := newTestRequest()
		require.False(t, r.Occupy(time.Now()))
		assert.Equal(t, StateRequested, r.State)
		assert.Len(t, r.StateHistory, 1)
		assert.Nil(t, r.OccupationTime)
	})

	t.Run("release from ALLOCATED", func(t *testing.T) {
		r := newTestRequest()
		require.True(t, r.Allocate("S1", "ZONE_A", time.Now()))
		require.False(t, r.Release(time.Now()))
		assert.Equal(t, StateAllocated, r.State)
		assert.Len(t, r.StateHistory, 2)
		assert.Nil(t, r.ReleaseTime)
	})

	t.Run("cancel from OCCUPIED", func(t *testing.T) {
		r := newTestRequest()
		require.True(t, r.Allocate("S1", "ZONE_A", time.Now()))
		require.True(t, r.Occupy(time.Now()))
		require.False(t, r.Cancel(time.Now()))
		assert.Equal(t, StateOccupied, r.State)
		assert.Len(t, r.StateHistory, 3)
		assert.Nil(t, r.CancellationTime)
	})

	t.Run("allocate from terminal state", func(t *testing.T) {
		r := newTestRequest()
		require.True(t, r.Cancel(time.Now()))
		require.False(t, r.Allocate("S1", "ZONE_A", time.Now()))
		assert.Equal(t, StateCancelled, r.State)
		assert.Empty(t, r.AllocatedSlot)
		assert.Nil(t, r.AllocationTime)
		assert.Zero(t, r.Penalty)
	})
}

func TestParkingRequest_SnapshotRestore(t *testing.T) {
	r := newTestRequest()
	before := r.Snapshot()

	require.True(t, r.Allocate("AREA_B1_SLOT_2", "ZONE_B", time.Now()))
	require.Equal(t, StateAllocated, r.State)
	require.Equal(t, CrossZonePenalty, r.Penalty)

	r.Restore(before)

	assert.Equal(t, StateRequested, r.State)
	assert.Empty(t, r.AllocatedSlot)
	assert.Empty(t, r.AllocatedZone)
	assert.Nil(t, r.AllocationTime)
	assert.Zero(t, r.Penalty)
}

// Restore deliberately leaves the audit trail intact: the history keeps
// the entry for the undone transition.
func TestParkingRequest_RestoreKeepsHistory(t *testing.T) {
	r := newTestRequest()
	before := r.Snapshot()

	require.True(t, r.Allocate("S1", "ZONE_A", time.Now()))
	r.Restore(before)

	assert.Equal(t, StateRequested, r.State)
	assert.Equal(t, []RequestState{StateRequested, StateAllocated}, r.StateHistory)
}

// A snapshot must be a value copy: mutating the request after capture must
// not change the snapshot.
func TestParkingRequest_SnapshotDoesNotAlias(t *testing.T) {
	r := newTestRequest()
	require.True(t, r.Allocate("S1", "ZONE_A", time.Now()))

	snap := r.Snapshot()
	require.True(t, r.Occupy(time.Now()))

	assert.Equal(t, StateAllocated, snap.State)
	assert.Nil(t, snap.OccupationTime)
}

func TestParkingRequest_DurationWithoutOccupation(t *testing.T) {
	r := newTestRequest()
	assert.Zero(t, r.Duration())

	view := r.View()
	assert.Zero(t, view.DurationSeconds)
	assert.False(t, view.IsCompleted)
}

func TestParkingRequest_ViewCopiesHistory(t *testing.T) {
	r := newTestRequest()
	view := r.View()
	view.StateHistory[0] = StateCancelled

	assert.Equal(t, StateRequested, r.StateHistory[0],
		"mutating the view must not reach the live request")
}
