// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianPark/services/parking/containers"
	"github.com/AleutianAI/AleutianPark/services/parking/datatypes"
)

// buildZone makes a zone with one area holding n slots.
func buildZone(t *testing.T, zoneID string, adjacent []string, n int) *datatypes.Zone {
	t.Helper()
	zone := datatypes.NewZone(zoneID, zoneID, adjacent)
	area := datatypes.NewParkingArea(zoneID+"_AREA", zoneID, zoneID+" area", n)
	for i := 1; i <= n; i++ {
		require.NoError(t, area.AddSlot(datatypes.NewParkingSlot(
			zoneID+"_AREA_SLOT_"+string(rune('0'+i)), zoneID+"_AREA", zoneID)))
	}
	zone.AddArea(area)
	return zone
}

func TestAllocationEngine_UnknownZone(t *testing.T) {
	zones := containers.NewHashMap[string, *datatypes.Zone](10)
	engine := NewAllocationEngine(zones)

	_, err := engine.AllocateSlot(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestAllocationEngine_SkipsDanglingAdjacency(t *testing.T) {
	zones := containers.NewHashMap[string, *datatypes.Zone](10)
	// Z1 is full and points at a zone that was never registered plus a
	// real one with space.
	z1 := buildZone(t, "Z1", []string{"GHOST", "Z2"}, 1)
	slot, ok := z1.FirstAvailableSlot()
	require.True(t, ok)
	require.True(t, slot.Allocate("CAR-X", "REQ_X"))
	zones.Insert("Z1", z1)
	zones.Insert("Z2", buildZone(t, "Z2", nil, 1))
	engine := NewAllocationEngine(zones)

	alloc, err := engine.AllocateSlot(context.Background(), "Z1")
	require.NoError(t, err)
	assert.Equal(t, "Z2", alloc.Zone.ID)
	assert.Equal(t, TierAdjacentZone, alloc.Tier)
	assert.True(t, alloc.CrossZone)
}

func TestAllocationEngine_AdjacencyOrderIsMostRecentFirst(t *testing.T) {
	zones := containers.NewHashMap[string, *datatypes.Zone](10)
	// Adjacency declared as [Z2, Z3]; head insertion means Z3 is scanned
	// first.
	z1 := buildZone(t, "Z1", []string{"Z2", "Z3"}, 0)
	zones.Insert("Z1", z1)
	zones.Insert("Z2", buildZone(t, "Z2", nil, 1))
	zones.Insert("Z3", buildZone(t, "Z3", nil, 1))
	engine := NewAllocationEngine(zones)

	alloc, err := engine.AllocateSlot(context.Background(), "Z1")
	require.NoError(t, err)
	assert.Equal(t, "Z3", alloc.Zone.ID)
}

func TestAllocationEngine_FindSlotByID(t *testing.T) {
	zones := containers.NewHashMap[string, *datatypes.Zone](10)
	zones.Insert("Z1", buildZone(t, "Z1", nil, 2))
	engine := NewAllocationEngine(zones)

	slot, ok := engine.FindSlotByID("Z1_AREA_SLOT_2")
	require.True(t, ok)
	assert.Equal(t, "Z1", slot.ZoneID)

	_, ok = engine.FindSlotByID("MISSING")
	assert.False(t, ok)
}

func TestAllocationEngine_TierString(t *testing.T) {
	assert.Equal(t, "same_zone", TierSameZone.String())
	assert.Equal(t, "adjacent_zone", TierAdjacentZone.String())
	assert.Equal(t, "any_zone", TierAnyZone.String())
	assert.Equal(t, "unknown", AllocationTier(99).String())
}

func TestAllocationEngine_BestZoneSuggestionPicksMostAvailable(t *testing.T) {
	zones := containers.NewHashMap[string, *datatypes.Zone](10)
	// PREF is full with no adjacency, so the suggestion has to come from
	// the city-wide scan. ACRE hashes to an earlier bucket than YARD but
	// has fewer free slots, so a first-match scan would pick it wrongly.
	pref := buildZone(t, "PREF", nil, 1)
	slot, ok := pref.FirstAvailableSlot()
	require.True(t, ok)
	require.True(t, slot.Allocate("CAR-X", "REQ_X"))
	zones.Insert("PREF", pref)
	zones.Insert("ACRE", buildZone(t, "ACRE", nil, 1))
	zones.Insert("YARD", buildZone(t, "YARD", nil, 5))
	engine := NewAllocationEngine(zones)

	zoneID, tier, err := engine.BestZoneSuggestion("PREF")
	require.NoError(t, err)
	assert.Equal(t, "YARD", zoneID)
	assert.Equal(t, TierAnyZone, tier)
}

func TestAllocationEngine_BestZoneSuggestionTieKeepsFirst(t *testing.T) {
	zones := containers.NewHashMap[string, *datatypes.Zone](10)
	pref := buildZone(t, "PREF", nil, 0)
	zones.Insert("PREF", pref)
	zones.Insert("ZA", buildZone(t, "ZA", nil, 2))
	zones.Insert("ZB", buildZone(t, "ZB", nil, 2))
	engine := NewAllocationEngine(zones)

	zoneID, _, err := engine.BestZoneSuggestion("PREF")
	require.NoError(t, err)
	assert.Equal(t, "ZA", zoneID)
}

func TestAllocationEngine_BestZoneSuggestionAllFull(t *testing.T) {
	zones := containers.NewHashMap[string, *datatypes.Zone](10)
	z1 := buildZone(t, "Z1", nil, 1)
	slot, ok := z1.FirstAvailableSlot()
	require.True(t, ok)
	require.True(t, slot.Allocate("CAR-X", "REQ_X"))
	zones.Insert("Z1", z1)
	engine := NewAllocationEngine(zones)

	_, _, err := engine.BestZoneSuggestion("Z1")
	assert.ErrorIs(t, err, ErrNoSlotAvailable)
}
