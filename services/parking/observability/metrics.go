// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability holds the Prometheus metrics for the parking
// service. Metrics are registered with the default registry via promauto
// and served on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AllocationsTotal counts allocation attempts by tier and outcome.
	// Tier is same_zone, adjacent_zone, any_zone, or none when every
	// zone was full.
	AllocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_allocations_total",
		Help: "Total allocation attempts by tier and outcome",
	}, []string{"tier", "outcome"})

	// CrossZoneAllocationsTotal counts allocations that landed outside
	// the requested zone.
	CrossZoneAllocationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parking_cross_zone_allocations_total",
		Help: "Total allocations placed outside the requested zone",
	})

	// AllocationLatency observes allocation search latency.
	AllocationLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "parking_allocation_latency_seconds",
		Help:    "Allocation search latency",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})

	// RequestTransitionsTotal counts request state transitions by the
	// state entered.
	RequestTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_request_transitions_total",
		Help: "Total request state transitions by target state",
	}, []string{"state"})

	// ActiveRequests tracks requests that are not yet in a final state.
	ActiveRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "parking_active_requests",
		Help: "Requests currently in a non-final state",
	})

	// QueueDepth tracks the pending-request queue depth.
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "parking_queue_depth",
		Help: "Pending requests waiting in the queue",
	})

	// RollbacksTotal counts operations undone by rollback.
	RollbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parking_rollbacks_total",
		Help: "Total operations undone via rollback",
	})
)
