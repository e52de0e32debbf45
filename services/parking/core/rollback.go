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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/AleutianPark/services/parking/containers"
	"github.com/AleutianAI/AleutianPark/services/parking/datatypes"
)

// OperationKind names a mutating operation the rollback manager can undo.
type OperationKind string

const (
	OpAllocate OperationKind = "allocate"
	OpOccupy   OperationKind = "occupy"
	OpRelease  OperationKind = "release"
)

// OperationRecord is one entry in the rollback history: full before-images
// of the slot and the request taken before the operation mutated anything.
// Restoring both images is sufficient to undo any single operation.
type OperationRecord struct {
	ID            string
	Kind          OperationKind
	RequestID     string
	VehicleID     string
	SlotID        string
	ZoneID        string
	SlotBefore    datatypes.SlotSnapshot
	RequestBefore datatypes.RequestSnapshot
	Timestamp     time.Time
}

// UndoneOperation is the caller-facing record of one reversed operation.
type UndoneOperation struct {
	OperationID string    `json:"operation_id"`
	Kind        string    `json:"operation"`
	RequestID   string    `json:"request_id"`
	VehicleID   string    `json:"vehicle_id,omitempty"`
	SlotID      string    `json:"slot_id,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// slotResolver resolves slot ids back to live slots during replay. The
// System satisfies this through its engine.
type slotResolver interface {
	FindSlotByID(slotID string) (*datatypes.ParkingSlot, bool)
}

// =============================================================================
// RollbackManager
// =============================================================================

// RollbackManager keeps a bounded LIFO history of mutating operations and
// undoes the most recent k of them on demand by restoring before-images.
//
// Invariants:
//   - History depth is fixed at construction; recording into a full history
//     silently drops the new record (the operation itself still happened).
//   - Rollback pops newest-first, so interleaved operations on different
//     requests unwind in exact reverse order.
//
// Thread Safety: NOT safe for concurrent use. The owning System serializes
// all calls under its mutex.
type RollbackManager struct {
	history *containers.Stack[OperationRecord]
	logger  *slog.Logger
}

// NewRollbackManager creates a manager with the given history depth.
// A non-positive depth falls back to 100.
func NewRollbackManager(depth int, logger *slog.Logger) *RollbackManager {
	if depth <= 0 {
		depth = 100
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RollbackManager{
		history: containers.NewStack[OperationRecord](depth),
		logger:  logger,
	}
}

// RecordOperation captures a before-image pair for an operation about to run.
// Must be called BEFORE the operation mutates the slot or the request. When
// the history is full the record is dropped; undo capability for this
// operation is lost but the operation proceeds.
func (m *RollbackManager) RecordOperation(kind OperationKind, req *datatypes.ParkingRequest, slot *datatypes.ParkingSlot, at time.Time) {
	rec := OperationRecord{
		ID:            uuid.NewString(),
		Kind:          kind,
		RequestID:     req.ID,
		VehicleID:     req.VehicleID,
		SlotID:        slot.ID,
		ZoneID:        slot.ZoneID,
		SlotBefore:    slot.Snapshot(),
		RequestBefore: req.Snapshot(),
		Timestamp:     at,
	}
	if err := m.history.Push(rec); err != nil {
		m.logger.Warn("rollback history full, operation not undoable",
			"operation", string(kind),
			"request_id", req.ID,
		)
	}
}

// Rollback undoes the most recent k operations, newest first.
//
// Inputs:
//   - ctx: Context for tracing.
//   - k: How many operations to undo. Clamped to the history size.
//   - slots: Resolver for slot ids; entries whose slot or request no longer
//     resolves are skipped but still consumed.
//   - requests: Index of live requests by id.
//
// Outputs:
//   - []UndoneOperation: The operations actually reversed, newest first.
//
// Request state history is deliberately left intact: a rolled-back request
// keeps the transitions it went through, only its current state reverts.
func (m *RollbackManager) Rollback(ctx context.Context, k int, slots slotResolver, requests *containers.HashMap[string, *datatypes.ParkingRequest]) []UndoneOperation {
	_, span := otel.Tracer("parking").Start(ctx, "core.RollbackManager.Rollback",
		trace.WithAttributes(
			attribute.Int("requested", k),
			attribute.Int("history_size", m.history.Len()),
		),
	)
	defer span.End()

	undone := make([]UndoneOperation, 0, k)
	for i := 0; i < k; i++ {
		rec, ok := m.history.Pop()
		if !ok {
			break
		}

		slot, slotOK := slots.FindSlotByID(rec.SlotID)
		req, reqOK := requests.Get(rec.RequestID)
		if !slotOK || !reqOK {
			m.logger.Warn("skipping rollback entry, target no longer exists",
				"operation_id", rec.ID,
				"slot_id", rec.SlotID,
				"request_id", rec.RequestID,
			)
			continue
		}

		slot.Restore(rec.SlotBefore)
		req.Restore(rec.RequestBefore)

		undone = append(undone, UndoneOperation{
			OperationID: rec.ID,
			Kind:        string(rec.Kind),
			RequestID:   rec.RequestID,
			VehicleID:   rec.VehicleID,
			SlotID:      rec.SlotID,
			Timestamp:   rec.Timestamp,
		})
		m.logger.Info("operation rolled back",
			"operation", string(rec.Kind),
			"request_id", rec.RequestID,
			"slot_id", rec.SlotID,
		)
	}

	span.SetAttributes(attribute.Int("undone", len(undone)))
	return undone
}

// RecentOperations returns views of the newest n history entries without
// consuming them, newest first.
func (m *RollbackManager) RecentOperations(n int) []UndoneOperation {
	recs := m.history.Recent(n)
	out := make([]UndoneOperation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, UndoneOperation{
			OperationID: rec.ID,
			Kind:        string(rec.Kind),
			RequestID:   rec.RequestID,
			VehicleID:   rec.VehicleID,
			SlotID:      rec.SlotID,
			Timestamp:   rec.Timestamp,
		})
	}
	return out
}

// HistorySize returns the number of undoable operations currently held.
func (m *RollbackManager) HistorySize() int {
	return m.history.Len()
}

// ClearHistory discards all recorded operations.
func (m *RollbackManager) ClearHistory() {
	m.history.Clear()
}
