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

import "github.com/AleutianAI/AleutianPark/services/parking/containers"

// ParkingArea is a named sub-partition of a zone owning a fixed-capacity
// set of slots. Capacity is immutable after creation; AddSlot beyond
// capacity fails with containers.ErrArrayFull.
type ParkingArea struct {
	ID       string
	ZoneID   string
	Name     string
	MaxSlots int

	slots *containers.Array[*ParkingSlot]
}

// NewParkingArea creates an empty area with a fixed slot capacity.
func NewParkingArea(id, zoneID, name string, maxSlots int) *ParkingArea {
	return &ParkingArea{
		ID:       id,
		ZoneID:   zoneID,
		Name:     name,
		MaxSlots: maxSlots,
		slots:    containers.NewArray[*ParkingSlot](maxSlots),
	}
}

// AddSlot appends a slot in insertion order.
func (a *ParkingArea) AddSlot(slot *ParkingSlot) error {
	return a.slots.Append(slot)
}

// AvailableSlots returns the free slots in insertion order.
func (a *ParkingArea) AvailableSlots() []*ParkingSlot {
	var out []*ParkingSlot
	a.slots.Each(func(s *ParkingSlot) bool {
		if s.IsAvailable {
			out = append(out, s)
		}
		return true
	})
	return out
}

// FirstAvailableSlot returns the first free slot in insertion order.
func (a *ParkingArea) FirstAvailableSlot() (*ParkingSlot, bool) {
	var found *ParkingSlot
	a.slots.Each(func(s *ParkingSlot) bool {
		if s.IsAvailable {
			found = s
			return false
		}
		return true
	})
	return found, found != nil
}

// SlotByID scans for a slot by id. O(n) over the area's slots.
func (a *ParkingArea) SlotByID(slotID string) (*ParkingSlot, bool) {
	var found *ParkingSlot
	a.slots.Each(func(s *ParkingSlot) bool {
		if s.ID == slotID {
			found = s
			return false
		}
		return true
	})
	return found, found != nil
}

// Slots returns every slot in insertion order.
func (a *ParkingArea) Slots() []*ParkingSlot {
	return a.slots.All()
}

// TotalSlots returns the number of provisioned slots.
func (a *ParkingArea) TotalSlots() int {
	return a.slots.Len()
}

// OccupiedSlots returns the number of slots currently held.
func (a *ParkingArea) OccupiedSlots() int {
	count := 0
	a.slots.Each(func(s *ParkingSlot) bool {
		if !s.IsAvailable {
			count++
		}
		return true
	})
	return count
}

// AreaView is the read-only JSON projection of an area, including its
// slots in index order.
type AreaView struct {
	AreaID         string     `json:"area_id"`
	ZoneID         string     `json:"zone_id"`
	AreaName       string     `json:"area_name"`
	TotalSlots     int        `json:"total_slots"`
	AvailableSlots int        `json:"available_slots"`
	OccupiedSlots  int        `json:"occupied_slots"`
	MaxCapacity    int        `json:"max_capacity"`
	Slots          []SlotView `json:"slots"`
}

// View returns the area's read-only projection.
func (a *ParkingArea) View() AreaView {
	slots := a.Slots()
	slotViews := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		slotViews = append(slotViews, s.View())
	}
	return AreaView{
		AreaID:         a.ID,
		ZoneID:         a.ZoneID,
		AreaName:       a.Name,
		TotalSlots:     a.TotalSlots(),
		AvailableSlots: len(a.AvailableSlots()),
		OccupiedSlots:  a.OccupiedSlots(),
		MaxCapacity:    a.MaxSlots,
		Slots:          slotViews,
	}
}
