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
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/AleutianPark/services/parking/containers"
	"github.com/AleutianAI/AleutianPark/services/parking/datatypes"
)

// AllocationTier identifies which of the three search tiers produced a slot.
type AllocationTier int

const (
	TierSameZone     AllocationTier = iota // Slot found in the requested zone
	TierAdjacentZone                       // Slot found in an adjacent zone
	TierAnyZone                            // Slot found by exhaustive scan
)

// String returns the string representation of the allocation tier.
func (t AllocationTier) String() string {
	switch t {
	case TierSameZone:
		return "same_zone"
	case TierAdjacentZone:
		return "adjacent_zone"
	case TierAnyZone:
		return "any_zone"
	default:
		return "unknown"
	}
}

// allocation is the engine's internal result: the chosen slot, the zone it
// belongs to, and whether the placement crossed out of the requested zone.
type allocation struct {
	Slot      *datatypes.ParkingSlot
	Zone      *datatypes.Zone
	Tier      AllocationTier
	CrossZone bool
}

// =============================================================================
// AllocationEngine
// =============================================================================

// AllocationEngine selects slots for parking requests using a three-tier
// search over the zone graph:
//
//	Tier 1: the requested zone itself.
//	Tier 2: zones adjacent to the requested zone, most recently linked first.
//	Tier 3: every zone in registration order, exhaustively.
//
// Within a zone, areas are scanned in insertion order and slots in index
// order, so allocation is fully deterministic for a given topology state.
//
// Thread Safety: NOT safe for concurrent use. The owning System serializes
// all calls under its mutex.
type AllocationEngine struct {
	zones *containers.HashMap[string, *datatypes.Zone]
}

// NewAllocationEngine creates an engine over the given zone index. The engine
// shares the index with its owner; zones added later are visible immediately.
func NewAllocationEngine(zones *containers.HashMap[string, *datatypes.Zone]) *AllocationEngine {
	return &AllocationEngine{zones: zones}
}

// AllocateSlot finds a slot for a request targeting preferredZone.
//
// Inputs:
//   - ctx: Context for tracing.
//   - preferredZone: The zone id the caller asked for.
//
// Outputs:
//   - allocation: The chosen slot, its zone, the tier, and the cross-zone flag.
//   - error: ErrZoneNotFound if preferredZone is unknown, ErrNoSlotAvailable
//     if every zone is full.
//
// The returned slot is NOT yet claimed; the caller performs the claim so the
// before-image can be captured first.
func (e *AllocationEngine) AllocateSlot(ctx context.Context, preferredZone string) (allocation, error) {
	_, span := otel.Tracer("parking").Start(ctx, "core.AllocationEngine.AllocateSlot",
		trace.WithAttributes(
			attribute.String("preferred_zone", preferredZone),
		),
	)
	defer span.End()

	zone, ok := e.zones.Get(preferredZone)
	if !ok {
		return allocation{}, fmt.Errorf("%w: %s", ErrZoneNotFound, preferredZone)
	}

	// Tier 1: the requested zone.
	if slot, found := zone.FirstAvailableSlot(); found {
		span.SetAttributes(attribute.String("tier", TierSameZone.String()))
		return allocation{Slot: slot, Zone: zone, Tier: TierSameZone}, nil
	}

	// Tier 2: adjacent zones, most recently linked first. Dangling adjacency
	// entries (edges to zones never registered) are skipped.
	span.AddEvent("tier1_exhausted")
	for _, adjID := range zone.AdjacentZones() {
		adj, ok := e.zones.Get(adjID)
		if !ok {
			continue
		}
		if slot, found := adj.FirstAvailableSlot(); found {
			span.SetAttributes(
				attribute.String("tier", TierAdjacentZone.String()),
				attribute.String("allocated_zone", adj.ID),
			)
			return allocation{Slot: slot, Zone: adj, Tier: TierAdjacentZone, CrossZone: true}, nil
		}
	}

	// Tier 3: exhaustive scan over every zone in index order. The requested
	// zone and its adjacents come up again here; they are full, so the
	// re-scan is a no-op for them.
	span.AddEvent("tier2_exhausted")
	for _, z := range e.zones.Values() {
		if slot, found := z.FirstAvailableSlot(); found {
			span.SetAttributes(
				attribute.String("tier", TierAnyZone.String()),
				attribute.String("allocated_zone", z.ID),
			)
			return allocation{Slot: slot, Zone: z, Tier: TierAnyZone, CrossZone: z.ID != preferredZone}, nil
		}
	}

	span.SetAttributes(attribute.String("tier", "none"))
	return allocation{}, ErrNoSlotAvailable
}

// FindSlotByID resolves a slot id to its slot by scanning every zone.
//
// Outputs:
//   - *datatypes.ParkingSlot: The slot, or nil.
//   - bool: Whether the slot exists.
func (e *AllocationEngine) FindSlotByID(slotID string) (*datatypes.ParkingSlot, bool) {
	for _, zone := range e.zones.Values() {
		for _, area := range zone.Areas() {
			if slot, ok := area.SlotByID(slotID); ok {
				return slot, true
			}
		}
	}
	return nil, false
}

// ZoneAvailability reports the free-slot count per zone, in index order.
func (e *AllocationEngine) ZoneAvailability() []ZoneAvailability {
	items := e.zones.Items()
	out := make([]ZoneAvailability, 0, len(items))
	for _, item := range items {
		out = append(out, ZoneAvailability{
			ZoneID:         item.Key,
			Name:           item.Value.Name,
			AvailableSlots: item.Value.AvailableSlotCount(),
			TotalSlots:     item.Value.TotalSlots(),
		})
	}
	return out
}

// BestZoneSuggestion recommends the zone a vehicle preferring preferredZone
// would actually land in right now, following the same tier order as
// AllocateSlot but without claiming anything.
//
// Outputs:
//   - string: The suggested zone id.
//   - AllocationTier: The tier the suggestion came from.
//   - error: ErrZoneNotFound or ErrNoSlotAvailable.
func (e *AllocationEngine) BestZoneSuggestion(preferredZone string) (string, AllocationTier, error) {
	zone, ok := e.zones.Get(preferredZone)
	if !ok {
		return "", 0, fmt.Errorf("%w: %s", ErrZoneNotFound, preferredZone)
	}
	if zone.AvailableSlotCount() > 0 {
		return zone.ID, TierSameZone, nil
	}
	for _, adjID := range zone.AdjacentZones() {
		if adj, ok := e.zones.Get(adjID); ok && adj.AvailableSlotCount() > 0 {
			return adj.ID, TierAdjacentZone, nil
		}
	}

	// Fall back to the zone with the most free slots city-wide. A strict
	// greater-than keeps the first-encountered zone on ties.
	best := ""
	maxAvailable := 0
	for _, z := range e.zones.Values() {
		if available := z.AvailableSlotCount(); available > maxAvailable {
			best = z.ID
			maxAvailable = available
		}
	}
	if best != "" {
		return best, TierAnyZone, nil
	}
	return "", 0, ErrNoSlotAvailable
}

// ZoneAvailability is a per-zone capacity summary.
type ZoneAvailability struct {
	ZoneID         string `json:"zone_id"`
	Name           string `json:"name"`
	AvailableSlots int    `json:"available_slots"`
	TotalSlots     int    `json:"total_slots"`
}
