// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes provides the domain model for the parking service:
// zones, areas, slots, vehicles, and the request state machine.
package datatypes

// ParkingSlot is the atomic allocatable resource unit.
//
// Invariant: CurrentVehicle and CurrentRequest are set if and only if
// IsAvailable is false. Slots are created once when an area is provisioned
// and toggled by allocate/release; they are never destroyed while the
// system runs.
type ParkingSlot struct {
	ID             string
	AreaID         string
	ZoneID         string
	IsAvailable    bool
	CurrentVehicle string
	CurrentRequest string
}

// SlotSnapshot is an immutable before-image of a slot's mutable state,
// captured for rollback. It is a value type on purpose: holding a
// reference into the live slot would alias later mutations.
type SlotSnapshot struct {
	IsAvailable    bool
	CurrentVehicle string
	CurrentRequest string
}

// NewParkingSlot creates an available slot owned by the given area and zone.
func NewParkingSlot(id, areaID, zoneID string) *ParkingSlot {
	return &ParkingSlot{
		ID:          id,
		AreaID:      areaID,
		ZoneID:      zoneID,
		IsAvailable: true,
	}
}

// Allocate assigns the slot to a vehicle and request.
// Returns false if the slot is already taken; no mutation occurs then.
func (s *ParkingSlot) Allocate(vehicleID, requestID string) bool {
	if !s.IsAvailable {
		return false
	}
	s.IsAvailable = false
	s.CurrentVehicle = vehicleID
	s.CurrentRequest = requestID
	return true
}

// Release makes the slot available again and clears its occupancy.
func (s *ParkingSlot) Release() {
	s.IsAvailable = true
	s.CurrentVehicle = ""
	s.CurrentRequest = ""
}

// Snapshot captures the slot's mutable state for rollback.
func (s *ParkingSlot) Snapshot() SlotSnapshot {
	return SlotSnapshot{
		IsAvailable:    s.IsAvailable,
		CurrentVehicle: s.CurrentVehicle,
		CurrentRequest: s.CurrentRequest,
	}
}

// Restore overwrites the slot's mutable state with a captured snapshot.
// This is a full overwrite, not a merge.
func (s *ParkingSlot) Restore(snap SlotSnapshot) {
	s.IsAvailable = snap.IsAvailable
	s.CurrentVehicle = snap.CurrentVehicle
	s.CurrentRequest = snap.CurrentRequest
}

// SlotView is the read-only JSON projection of a slot.
type SlotView struct {
	SlotID         string `json:"slot_id"`
	AreaID         string `json:"area_id"`
	ZoneID         string `json:"zone_id"`
	IsAvailable    bool   `json:"is_available"`
	CurrentVehicle string `json:"current_vehicle,omitempty"`
	CurrentRequest string `json:"current_request,omitempty"`
}

// View returns the slot's read-only projection.
func (s *ParkingSlot) View() SlotView {
	return SlotView{
		SlotID:         s.ID,
		AreaID:         s.AreaID,
		ZoneID:         s.ZoneID,
		IsAvailable:    s.IsAvailable,
		CurrentVehicle: s.CurrentVehicle,
		CurrentRequest: s.CurrentRequest,
	}
}
