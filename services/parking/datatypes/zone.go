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
	"math"

	"github.com/AleutianAI/AleutianPark/services/parking/containers"
)

// CrossZonePenalty is the fixed penalty applied when a request is allocated
// a slot outside its requested zone. Applied once, on the
// REQUESTED→ALLOCATED transition only.
const CrossZonePenalty = 50

// Zone is a top-level partition of the parking space.
//
// A zone owns an ordered sequence of parking areas and a one-sided set of
// adjacent zone ids. Adjacency is stored per side: callers must add both
// directions if symmetry is desired.
type Zone struct {
	ID   string
	Name string

	areas    *containers.LinkedList[*ParkingArea]
	adjacent *containers.AdjacencyList

	// Penalty charged for allocations that land here from another zone's
	// request. Constant across the deployment.
	Penalty int
}

// NewZone creates a zone with the given adjacency seed.
func NewZone(id, name string, adjacentZones []string) *Zone {
	z := &Zone{
		ID:       id,
		Name:     name,
		areas:    containers.NewLinkedList[*ParkingArea](),
		adjacent: containers.NewAdjacencyList(),
		Penalty:  CrossZonePenalty,
	}
	for _, adj := range adjacentZones {
		z.adjacent.Add(adj)
	}
	return z
}

// AddArea appends an area in insertion order. O(n) over the zone's areas.
func (z *Zone) AddArea(area *ParkingArea) {
	z.areas.Append(area)
}

// Areas returns the zone's areas in insertion order.
func (z *Zone) Areas() []*ParkingArea {
	return z.areas.All()
}

// AreaCount returns the number of areas.
func (z *Zone) AreaCount() int {
	return z.areas.Len()
}

// AddAdjacent records an edge to another zone. Returns false on duplicates.
func (z *Zone) AddAdjacent(zoneID string) bool {
	return z.adjacent.Add(zoneID)
}

// IsAdjacent reports whether zoneID is an adjacency candidate.
func (z *Zone) IsAdjacent(zoneID string) bool {
	return z.adjacent.Contains(zoneID)
}

// AdjacentZones returns neighbor ids, most-recently-added first.
func (z *Zone) AdjacentZones() []string {
	return z.adjacent.Zones()
}

// FirstAvailableSlot returns the first free slot in area insertion order,
// then slot insertion order within the area.
func (z *Zone) FirstAvailableSlot() (*ParkingSlot, bool) {
	var found *ParkingSlot
	z.areas.Each(func(a *ParkingArea) bool {
		if s, ok := a.FirstAvailableSlot(); ok {
			found = s
			return false
		}
		return true
	})
	return found, found != nil
}

// AvailableSlots returns every free slot in scan order.
func (z *Zone) AvailableSlots() []*ParkingSlot {
	var out []*ParkingSlot
	z.areas.Each(func(a *ParkingArea) bool {
		out = append(out, a.AvailableSlots()...)
		return true
	})
	return out
}

// AvailableSlotCount returns the number of free slots across all areas.
func (z *Zone) AvailableSlotCount() int {
	available := 0
	z.areas.Each(func(a *ParkingArea) bool {
		available += len(a.AvailableSlots())
		return true
	})
	return available
}

// TotalSlots returns the number of provisioned slots across all areas.
func (z *Zone) TotalSlots() int {
	total := 0
	z.areas.Each(func(a *ParkingArea) bool {
		total += a.TotalSlots()
		return true
	})
	return total
}

// OccupiedSlots returns the number of held slots across all areas.
func (z *Zone) OccupiedSlots() int {
	occupied := 0
	z.areas.Each(func(a *ParkingArea) bool {
		occupied += a.OccupiedSlots()
		return true
	})
	return occupied
}

// UtilizationRate returns occupancy as a percentage, 0 for an empty zone.
func (z *Zone) UtilizationRate() float64 {
	total := z.TotalSlots()
	if total == 0 {
		return 0
	}
	rate := float64(z.OccupiedSlots()) / float64(total) * 100
	return math.Round(rate*100) / 100
}

// ZoneView is the read-only JSON projection of a zone.
type ZoneView struct {
	ZoneID           string     `json:"zone_id"`
	ZoneName         string     `json:"zone_name"`
	TotalSlots       int        `json:"total_slots"`
	OccupiedSlots    int        `json:"occupied_slots"`
	AvailableSlots   int        `json:"available_slots"`
	UtilizationRate  float64    `json:"utilization_rate"`
	AdjacentZones    []string   `json:"adjacent_zones"`
	CrossZonePenalty int        `json:"cross_zone_penalty"`
	ParkingAreaCount int        `json:"parking_areas_count"`
	Areas            []AreaView `json:"areas"`
}

// View returns the zone's read-only projection.
func (z *Zone) View() ZoneView {
	areas := z.Areas()
	areaViews := make([]AreaView, 0, len(areas))
	for _, a := range areas {
		areaViews = append(areaViews, a.View())
	}
	return ZoneView{
		ZoneID:           z.ID,
		ZoneName:         z.Name,
		TotalSlots:       z.TotalSlots(),
		OccupiedSlots:    z.OccupiedSlots(),
		AvailableSlots:   z.AvailableSlotCount(),
		UtilizationRate:  z.UtilizationRate(),
		AdjacentZones:    z.AdjacentZones(),
		CrossZonePenalty: z.Penalty,
		ParkingAreaCount: z.AreaCount(),
		Areas:            areaViews,
	}
}
