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
	"math"
	"sort"

	"github.com/AleutianAI/AleutianPark/services/parking/containers"
	"github.com/AleutianAI/AleutianPark/services/parking/datatypes"
)

// ZoneAnalytics summarizes finished trips that landed in one zone.
type ZoneAnalytics struct {
	ZoneID                 string  `json:"zone_id"`
	CompletedTrips         int     `json:"completed_trips"`
	CrossZoneTrips         int     `json:"cross_zone_trips"`
	TotalPenalty           int     `json:"total_penalty"`
	AverageDurationSeconds float64 `json:"average_duration_seconds"`
	CurrentUtilization     float64 `json:"current_utilization"`
}

// Analytics is the system-wide trip report.
type Analytics struct {
	TotalFinished          int             `json:"total_finished"`
	CompletedTrips         int             `json:"completed_trips"`
	CancelledRequests      int             `json:"cancelled_requests"`
	CrossZoneTrips         int             `json:"cross_zone_trips"`
	TotalPenalty           int             `json:"total_penalty"`
	AverageDurationSeconds float64         `json:"average_duration_seconds"`
	Zones                  []ZoneAnalytics `json:"zones"`
	PeakZones              []string        `json:"peak_zones"`
}

// Analytics folds the trip history into per-zone and system totals.
// Released requests count as completed trips; cancelled requests count
// separately and contribute no duration. Peak zones are the top three by
// completed trips, ties broken by zone id.
func (s *System) Analytics() Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	perZone := containers.NewHashMap[string, *ZoneAnalytics](s.zones.Len() + 1)
	var out Analytics
	var totalDuration float64

	for _, trip := range s.tripHistory {
		out.TotalFinished++
		if trip.State == datatypes.StateCancelled {
			out.CancelledRequests++
			continue
		}

		out.CompletedTrips++
		totalDuration += trip.DurationSeconds
		out.TotalPenalty += trip.CrossZonePenalty
		crossZone := trip.AllocatedZone != "" && trip.AllocatedZone != trip.RequestedZone
		if crossZone {
			out.CrossZoneTrips++
		}

		stat, ok := perZone.Get(trip.AllocatedZone)
		if !ok {
			stat = &ZoneAnalytics{ZoneID: trip.AllocatedZone}
			perZone.Insert(trip.AllocatedZone, stat)
		}
		stat.CompletedTrips++
		stat.TotalPenalty += trip.CrossZonePenalty
		if crossZone {
			stat.CrossZoneTrips++
		}
		// Accumulate raw duration in the average field; finalized below.
		stat.AverageDurationSeconds += trip.DurationSeconds
	}

	if out.CompletedTrips > 0 {
		out.AverageDurationSeconds = round2(totalDuration / float64(out.CompletedTrips))
	}

	// Emit zone rows in registration order so the report is stable, and
	// include zones with no trips yet for their utilization.
	for _, zone := range s.zones.Values() {
		stat, ok := perZone.Get(zone.ID)
		if !ok {
			stat = &ZoneAnalytics{ZoneID: zone.ID}
		}
		if stat.CompletedTrips > 0 {
			stat.AverageDurationSeconds = round2(stat.AverageDurationSeconds / float64(stat.CompletedTrips))
		}
		stat.CurrentUtilization = zone.UtilizationRate()
		out.Zones = append(out.Zones, *stat)
	}

	out.PeakZones = peakZones(out.Zones, 3)
	return out
}

// peakZones returns the ids of the n busiest zones by completed trips.
// Zones with zero trips never rank.
func peakZones(zones []ZoneAnalytics, n int) []string {
	ranked := make([]ZoneAnalytics, 0, len(zones))
	for _, z := range zones {
		if z.CompletedTrips > 0 {
			ranked = append(ranked, z)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].CompletedTrips != ranked[j].CompletedTrips {
			return ranked[i].CompletedTrips > ranked[j].CompletedTrips
		}
		return ranked[i].ZoneID < ranked[j].ZoneID
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]string, 0, len(ranked))
	for _, z := range ranked {
		out = append(out, z.ZoneID)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TripHistory returns the finished trips (released or cancelled) in the
// order they finished.
func (s *System) TripHistory() []datatypes.RequestView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]datatypes.RequestView, len(s.tripHistory))
	copy(out, s.tripHistory)
	return out
}
