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

import "time"

// RequestState is a state in the request lifecycle.
type RequestState string

// Request lifecycle states.
//
// Legal transitions:
//
//	REQUESTED → ALLOCATED | CANCELLED
//	ALLOCATED → OCCUPIED  | CANCELLED
//	OCCUPIED  → RELEASED
//	RELEASED  → (terminal)
//	CANCELLED → (terminal)
const (
	StateRequested RequestState = "REQUESTED"
	StateAllocated RequestState = "ALLOCATED"
	StateOccupied  RequestState = "OCCUPIED"
	StateReleased  RequestState = "RELEASED"
	StateCancelled RequestState = "CANCELLED"
)

// CanTransitionTo reports whether next is a legal successor of s.
func (s RequestState) CanTransitionTo(next RequestState) bool {
	switch s {
	case StateRequested:
		return next == StateAllocated || next == StateCancelled
	case StateAllocated:
		return next == StateOccupied || next == StateCancelled
	case StateOccupied:
		return next == StateReleased
	default:
		// RELEASED and CANCELLED are terminal.
		return false
	}
}

// IsTerminal reports whether s is RELEASED or CANCELLED.
func (s RequestState) IsTerminal() bool {
	return s == StateReleased || s == StateCancelled
}

// ParkingRequest tracks one request through its lifecycle.
//
// State, allocation fields, and timestamps are only mutated through the
// transition methods (and Restore, which replays a previously captured
// state during rollback). StateHistory is append-only and is deliberately
// NOT trimmed by Restore: entries for undone transitions stay in the audit
// trail.
type ParkingRequest struct {
	ID            string
	VehicleID     string
	RequestedZone string
	RequestTime   time.Time

	State        RequestState
	StateHistory []RequestState

	AllocatedSlot string
	AllocatedZone string

	AllocationTime   *time.Time
	OccupationTime   *time.Time
	ReleaseTime      *time.Time
	CancellationTime *time.Time

	// Penalty is 0 or CrossZonePenalty, set once on allocation.
	Penalty int
}

// RequestSnapshot is an immutable before-image of a request's mutable
// state, captured for rollback. Timestamps are copied by value so the
// snapshot cannot alias the live request.
type RequestSnapshot struct {
	State            RequestState
	AllocatedSlot    string
	AllocatedZone    string
	AllocationTime   *time.Time
	OccupationTime   *time.Time
	ReleaseTime      *time.Time
	CancellationTime *time.Time
	Penalty          int
}

// NewParkingRequest creates a request in REQUESTED state.
func NewParkingRequest(id, vehicleID, requestedZone string, requestTime time.Time) *ParkingRequest {
	return &ParkingRequest{
		ID:            id,
		VehicleID:     vehicleID,
		RequestedZone: requestedZone,
		RequestTime:   requestTime,
		State:         StateRequested,
		StateHistory:  []RequestState{StateRequested},
	}
}

// transitionTo moves the request to next if the transition is legal.
// A rejected transition mutates nothing.
func (r *ParkingRequest) transitionTo(next RequestState) bool {
	if !r.State.CanTransitionTo(next) {
		return false
	}
	r.State = next
	r.StateHistory = append(r.StateHistory, next)
	return true
}

// Allocate records a slot grant. The cross-zone penalty is applied here,
// exactly once, when the allocated zone differs from the requested zone.
// Returns false (and mutates nothing) outside the REQUESTED state.
func (r *ParkingRequest) Allocate(slotID, zoneID string, at time.Time) bool {
	if !r.transitionTo(StateAllocated) {
		return false
	}
	r.AllocatedSlot = slotID
	r.AllocatedZone = zoneID
	r.AllocationTime = &at
	if zoneID != r.RequestedZone {
		r.Penalty = CrossZonePenalty
	}
	return true
}

// Occupy marks the vehicle as arrived. Legal only from ALLOCATED.
func (r *ParkingRequest) Occupy(at time.Time) bool {
	if !r.transitionTo(StateOccupied) {
		return false
	}
	r.OccupationTime = &at
	return true
}

// Release marks the vehicle as departed. Legal only from OCCUPIED.
func (r *ParkingRequest) Release(at time.Time) bool {
	if !r.transitionTo(StateReleased) {
		return false
	}
	r.ReleaseTime = &at
	return true
}

// Cancel aborts the request. Legal from REQUESTED or ALLOCATED.
func (r *ParkingRequest) Cancel(at time.Time) bool {
	if !r.transitionTo(StateCancelled) {
		return false
	}
	r.CancellationTime = &at
	return true
}

// IsCompleted reports whether the request reached a terminal state.
func (r *ParkingRequest) IsCompleted() bool {
	return r.State.IsTerminal()
}

// Duration returns the parked time, or 0 when occupation or release is
// missing.
func (r *ParkingRequest) Duration() time.Duration {
	if r.OccupationTime == nil || r.ReleaseTime == nil {
		return 0
	}
	return r.ReleaseTime.Sub(*r.OccupationTime)
}

// Snapshot captures the request's mutable state for rollback.
func (r *ParkingRequest) Snapshot() RequestSnapshot {
	return RequestSnapshot{
		State:            r.State,
		AllocatedSlot:    r.AllocatedSlot,
		AllocatedZone:    r.AllocatedZone,
		AllocationTime:   copyTime(r.AllocationTime),
		OccupationTime:   copyTime(r.OccupationTime),
		ReleaseTime:      copyTime(r.ReleaseTime),
		CancellationTime: copyTime(r.CancellationTime),
		Penalty:          r.Penalty,
	}
}

// Restore overwrites the request's mutable state with a captured snapshot.
// It is a trusted replay of a previously valid state: the transition table
// is not consulted, and StateHistory is left untouched.
func (r *ParkingRequest) Restore(snap RequestSnapshot) {
	r.State = snap.State
	r.AllocatedSlot = snap.AllocatedSlot
	r.AllocatedZone = snap.AllocatedZone
	r.AllocationTime = copyTime(snap.AllocationTime)
	r.OccupationTime = copyTime(snap.OccupationTime)
	r.ReleaseTime = copyTime(snap.ReleaseTime)
	r.CancellationTime = copyTime(snap.CancellationTime)
	r.Penalty = snap.Penalty
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// RequestView is the read-only JSON projection of a request.
type RequestView struct {
	RequestID        string         `json:"request_id"`
	VehicleID        string         `json:"vehicle_id"`
	RequestedZone    string         `json:"requested_zone"`
	AllocatedZone    string         `json:"allocated_zone,omitempty"`
	AllocatedSlot    string         `json:"allocated_slot,omitempty"`
	State            RequestState   `json:"state"`
	StateHistory     []RequestState `json:"state_history"`
	RequestTime      time.Time      `json:"request_time"`
	AllocationTime   *time.Time     `json:"allocation_time,omitempty"`
	OccupationTime   *time.Time     `json:"occupation_time,omitempty"`
	ReleaseTime      *time.Time     `json:"release_time,omitempty"`
	CancellationTime *time.Time     `json:"cancellation_time,omitempty"`
	CrossZonePenalty int            `json:"cross_zone_penalty"`
	DurationSeconds  float64        `json:"duration_seconds"`
	IsCompleted      bool           `json:"is_completed"`
}

// View returns the request's read-only projection. The history slice is
// copied so callers cannot reach back into the live request.
func (r *ParkingRequest) View() RequestView {
	history := make([]RequestState, len(r.StateHistory))
	copy(history, r.StateHistory)
	return RequestView{
		RequestID:        r.ID,
		VehicleID:        r.VehicleID,
		RequestedZone:    r.RequestedZone,
		AllocatedZone:    r.AllocatedZone,
		AllocatedSlot:    r.AllocatedSlot,
		State:            r.State,
		StateHistory:     history,
		RequestTime:      r.RequestTime,
		AllocationTime:   copyTime(r.AllocationTime),
		OccupationTime:   copyTime(r.OccupationTime),
		ReleaseTime:      copyTime(r.ReleaseTime),
		CancellationTime: copyTime(r.CancellationTime),
		CrossZonePenalty: r.Penalty,
		DurationSeconds:  r.Duration().Seconds(),
		IsCompleted:      r.IsCompleted(),
	}
}
