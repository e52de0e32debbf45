// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package core implements the parking system aggregate: the tiered
// allocation engine, the request lifecycle operations, the pending-request
// queue, and the LIFO rollback manager.
package core

import "errors"

// Sentinel errors for the operation surface. Callers distinguish these
// with errors.Is: not-found, invalid-transition, and no-slot-available are
// three different outcomes and map to different responses.
var (
	// ErrZoneNotFound is returned when a zone id is unknown.
	ErrZoneNotFound = errors.New("zone not found")

	// ErrVehicleNotFound is returned when a vehicle id is unknown.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleExists is returned when registering an already known vehicle.
	ErrVehicleExists = errors.New("vehicle already registered")

	// ErrRequestNotFound is returned when a request id is unknown.
	ErrRequestNotFound = errors.New("request not found")

	// ErrSlotNotFound is returned when a slot id resolves to nothing.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrRequestState is returned when the request's current state does not
	// permit the attempted operation. Distinct from not-found so callers can
	// report a client error instead of a missing resource.
	ErrRequestState = errors.New("invalid request state for operation")

	// ErrNoSlotAvailable is the normal "all full" outcome of allocation.
	// It is not a failure of the system; callers queue or report it.
	ErrNoSlotAvailable = errors.New("no slots available")

	// ErrQueueEmpty is returned when processing an empty pending queue.
	ErrQueueEmpty = errors.New("no pending requests")
)
