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
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/AleutianAI/AleutianPark/services/parking/config"
	"github.com/AleutianAI/AleutianPark/services/parking/containers"
	"github.com/AleutianAI/AleutianPark/services/parking/datatypes"
	"github.com/AleutianAI/AleutianPark/services/parking/observability"
)

// =============================================================================
// System
// =============================================================================

// System is the parking aggregate: the zone graph, the vehicle and request
// indexes, the allocation engine, the pending-request queue, and the
// rollback manager. Every operation runs under one mutex, so each operation
// is atomic with respect to the others and the rollback history reflects a
// serial order of mutations.
type System struct {
	mu sync.Mutex

	cityName string

	zones    *containers.HashMap[string, *datatypes.Zone]
	vehicles *containers.HashMap[string, *datatypes.Vehicle]
	requests *containers.HashMap[string, *datatypes.ParkingRequest]
	pending  *containers.Queue[string]

	engine   *AllocationEngine
	rollback *RollbackManager

	tripHistory    []datatypes.RequestView
	requestCounter int

	logger    *slog.Logger
	now       func() time.Time
	startedAt time.Time
}

// NewSystem creates an empty parking system sized by cfg.
//
// Inputs:
//   - cityName: Display name reported in status responses.
//   - cfg: Container sizing; zero values take the package defaults.
//   - logger: Destination for operation logs. nil uses slog.Default.
func NewSystem(cityName string, cfg config.SystemConfig, logger *slog.Logger) *System {
	cfg.ApplyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "parking_system")

	zones := containers.NewHashMap[string, *datatypes.Zone](cfg.ZoneBuckets)
	now := time.Now
	return &System{
		cityName:  cityName,
		zones:     zones,
		vehicles:  containers.NewHashMap[string, *datatypes.Vehicle](cfg.VehicleBuckets),
		requests:  containers.NewHashMap[string, *datatypes.ParkingRequest](cfg.RequestBuckets),
		pending:   containers.NewQueue[string](cfg.QueueCapacity),
		engine:    NewAllocationEngine(zones),
		rollback:  NewRollbackManager(cfg.RollbackDepth, logger),
		logger:    logger,
		now:       now,
		startedAt: now(),
	}
}

// NewSystemFromConfig creates a system and seeds the zone topology from cfg.
func NewSystemFromConfig(cityName string, cfg *config.Config, logger *slog.Logger) (*System, error) {
	s := NewSystem(cityName, cfg.System, logger)
	for _, zc := range cfg.Zones {
		s.AddZone(zc.ID, zc.Name, zc.AdjacentZones)
		for _, ac := range zc.Areas {
			if _, err := s.AddParkingArea(zc.ID, ac.ID, ac.Name, ac.Slots); err != nil {
				return nil, fmt.Errorf("seed area %s: %w", ac.ID, err)
			}
		}
	}
	return s, nil
}

// =============================================================================
// Topology
// =============================================================================

// AddZone registers a zone. Re-adding an existing id replaces the zone and
// orphans its areas, matching upsert semantics of the underlying index.
func (s *System) AddZone(zoneID, name string, adjacentZones []string) datatypes.ZoneView {
	s.mu.Lock()
	defer s.mu.Unlock()

	zone := datatypes.NewZone(zoneID, name, adjacentZones)
	s.zones.Insert(zoneID, zone)
	s.logger.Info("zone added", "zone_id", zoneID, "adjacent", len(adjacentZones))
	return zone.View()
}

// AddParkingArea creates an area under a zone and provisions numSlots slots
// named {areaID}_SLOT_{n}, n starting at 1.
func (s *System) AddParkingArea(zoneID, areaID, name string, numSlots int) (datatypes.AreaView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	zone, ok := s.zones.Get(zoneID)
	if !ok {
		return datatypes.AreaView{}, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneID)
	}

	area := datatypes.NewParkingArea(areaID, zoneID, name, numSlots)
	for n := 1; n <= numSlots; n++ {
		slotID := fmt.Sprintf("%s_SLOT_%d", areaID, n)
		if err := area.AddSlot(datatypes.NewParkingSlot(slotID, areaID, zoneID)); err != nil {
			return datatypes.AreaView{}, fmt.Errorf("provision slot %s: %w", slotID, err)
		}
	}
	zone.AddArea(area)
	s.logger.Info("parking area added", "zone_id", zoneID, "area_id", areaID, "slots", numSlots)
	return area.View(), nil
}

// ZoneViews returns every zone in index order.
func (s *System) ZoneViews() []datatypes.ZoneView {
	s.mu.Lock()
	defer s.mu.Unlock()

	zones := s.zones.Values()
	out := make([]datatypes.ZoneView, 0, len(zones))
	for _, z := range zones {
		out = append(out, z.View())
	}
	return out
}

// ZoneView returns one zone with its areas and slots.
func (s *System) ZoneView(zoneID string) (datatypes.ZoneView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	zone, ok := s.zones.Get(zoneID)
	if !ok {
		return datatypes.ZoneView{}, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneID)
	}
	return zone.View(), nil
}

// ZoneAvailability reports free-slot counts per zone.
func (s *System) ZoneAvailability() []ZoneAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.ZoneAvailability()
}

// SuggestZone recommends where a vehicle preferring zoneID would land now.
type SuggestZoneResult struct {
	PreferredZone string `json:"preferred_zone"`
	SuggestedZone string `json:"suggested_zone"`
	Tier          string `json:"tier"`
	CrossZone     bool   `json:"cross_zone"`
	Penalty       int    `json:"penalty"`
}

// SuggestZone runs the tier search without claiming a slot.
func (s *System) SuggestZone(zoneID string) (SuggestZoneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	suggested, tier, err := s.engine.BestZoneSuggestion(zoneID)
	if err != nil {
		return SuggestZoneResult{}, err
	}
	res := SuggestZoneResult{
		PreferredZone: zoneID,
		SuggestedZone: suggested,
		Tier:          tier.String(),
		CrossZone:     suggested != zoneID,
	}
	if res.CrossZone {
		res.Penalty = datatypes.CrossZonePenalty
	}
	return res, nil
}

// =============================================================================
// Vehicles
// =============================================================================

// RegisterVehicle adds a vehicle. Duplicate ids are rejected rather than
// upserted so a plate cannot silently change its preferred zone.
func (s *System) RegisterVehicle(vehicleID, preferredZone, vehicleType string) (datatypes.VehicleView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vehicles.Contains(vehicleID) {
		return datatypes.VehicleView{}, fmt.Errorf("%w: %s", ErrVehicleExists, vehicleID)
	}
	v := datatypes.NewVehicle(vehicleID, preferredZone, vehicleType)
	s.vehicles.Insert(vehicleID, v)
	s.logger.Info("vehicle registered", "vehicle_id", vehicleID, "preferred_zone", preferredZone)
	return v.View(), nil
}

// VehicleView returns one vehicle.
func (s *System) VehicleView(vehicleID string) (datatypes.VehicleView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles.Get(vehicleID)
	if !ok {
		return datatypes.VehicleView{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicleID)
	}
	return v.View(), nil
}

// VehicleViews returns every registered vehicle in index order.
func (s *System) VehicleViews() []datatypes.VehicleView {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles := s.vehicles.Values()
	out := make([]datatypes.VehicleView, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, v.View())
	}
	return out
}

// =============================================================================
// Request lifecycle
// =============================================================================

// AllocationResult reports a successful allocation.
type AllocationResult struct {
	RequestID     string    `json:"request_id"`
	VehicleID     string    `json:"vehicle_id"`
	SlotID        string    `json:"slot_id"`
	ZoneID        string    `json:"zone_id"`
	RequestedZone string    `json:"requested_zone"`
	Tier          string    `json:"tier"`
	CrossZone     bool      `json:"cross_zone"`
	Penalty       int       `json:"penalty"`
	AllocatedAt   time.Time `json:"allocated_at"`
}

// OccupancyResult reports a slot entering occupied use.
type OccupancyResult struct {
	RequestID  string    `json:"request_id"`
	SlotID     string    `json:"slot_id"`
	OccupiedAt time.Time `json:"occupied_at"`
}

// ReleaseResult reports a completed parking trip.
type ReleaseResult struct {
	RequestID       string    `json:"request_id"`
	SlotID          string    `json:"slot_id"`
	ReleasedAt      time.Time `json:"released_at"`
	DurationSeconds float64   `json:"duration_seconds"`
	Penalty         int       `json:"penalty"`
}

// CancelResult reports a cancelled request.
type CancelResult struct {
	RequestID   string    `json:"request_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// CreateRequest opens a parking request for a registered vehicle.
//
// Inputs:
//   - ctx: Context for tracing when autoAllocate is set.
//   - vehicleID: Must be registered.
//   - requestedZone: Must be a known zone.
//   - autoAllocate: When true, attempt allocation immediately. A full city
//     leaves the request in the requested state with no error.
//
// Outputs:
//   - datatypes.RequestView: The request after any auto-allocation.
//   - *AllocationResult: The allocation, or nil when none happened.
//   - error: ErrVehicleNotFound or ErrZoneNotFound.
func (s *System) CreateRequest(ctx context.Context, vehicleID, requestedZone string, autoAllocate bool) (datatypes.RequestView, *AllocationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.vehicles.Contains(vehicleID) {
		return datatypes.RequestView{}, nil, fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicleID)
	}
	if !s.zones.Contains(requestedZone) {
		return datatypes.RequestView{}, nil, fmt.Errorf("%w: %s", ErrZoneNotFound, requestedZone)
	}

	s.requestCounter++
	requestID := fmt.Sprintf("REQ_%04d", s.requestCounter)
	req := datatypes.NewParkingRequest(requestID, vehicleID, requestedZone, s.now())
	s.requests.Insert(requestID, req)
	observability.RequestTransitionsTotal.WithLabelValues(string(datatypes.StateRequested)).Inc()
	observability.ActiveRequests.Inc()
	s.logger.Info("request created",
		"request_id", requestID,
		"vehicle_id", vehicleID,
		"requested_zone", requestedZone,
	)

	var result *AllocationResult
	if autoAllocate {
		res, err := s.allocateLocked(ctx, req)
		if err == nil {
			result = &res
		} else if !errors.Is(err, ErrNoSlotAvailable) {
			return datatypes.RequestView{}, nil, err
		}
	}
	return req.View(), result, nil
}

// RequestView returns one request.
func (s *System) RequestView(requestID string) (datatypes.RequestView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests.Get(requestID)
	if !ok {
		return datatypes.RequestView{}, fmt.Errorf("%w: %s", ErrRequestNotFound, requestID)
	}
	return req.View(), nil
}

// RequestViews returns every request in index order.
func (s *System) RequestViews() []datatypes.RequestView {
	s.mu.Lock()
	defer s.mu.Unlock()

	reqs := s.requests.Values()
	out := make([]datatypes.RequestView, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.View())
	}
	return out
}

// AllocateParking assigns a slot to a requested request via the tier search.
func (s *System) AllocateParking(ctx context.Context, requestID string) (AllocationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests.Get(requestID)
	if !ok {
		return AllocationResult{}, fmt.Errorf("%w: %s", ErrRequestNotFound, requestID)
	}
	return s.allocateLocked(ctx, req)
}

// allocateLocked runs the allocation for req. Caller holds s.mu.
func (s *System) allocateLocked(ctx context.Context, req *datatypes.ParkingRequest) (AllocationResult, error) {
	if !req.State.CanTransitionTo(datatypes.StateAllocated) {
		return AllocationResult{}, fmt.Errorf("%w: cannot allocate request %s in state %s", ErrRequestState, req.ID, req.State)
	}

	start := time.Now()
	alloc, err := s.engine.AllocateSlot(ctx, req.RequestedZone)
	observability.AllocationLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		observability.AllocationsTotal.WithLabelValues("none", "miss").Inc()
		s.logger.Warn("allocation failed",
			"request_id", req.ID,
			"requested_zone", req.RequestedZone,
			"error", err,
		)
		return AllocationResult{}, err
	}

	at := s.now()
	// Before-images go into the history before anything mutates.
	s.rollback.RecordOperation(OpAllocate, req, alloc.Slot, at)

	alloc.Slot.Allocate(req.VehicleID, req.ID)
	req.Allocate(alloc.Slot.ID, alloc.Zone.ID, at)
	if v, ok := s.vehicles.Get(req.VehicleID); ok {
		v.CurrentRequest = req.ID
	}

	observability.AllocationsTotal.WithLabelValues(alloc.Tier.String(), "hit").Inc()
	observability.RequestTransitionsTotal.WithLabelValues(string(datatypes.StateAllocated)).Inc()
	if alloc.CrossZone {
		observability.CrossZoneAllocationsTotal.Inc()
	}
	s.logger.Info("slot allocated",
		"request_id", req.ID,
		"slot_id", alloc.Slot.ID,
		"zone_id", alloc.Zone.ID,
		"tier", alloc.Tier.String(),
		"cross_zone", alloc.CrossZone,
	)

	return AllocationResult{
		RequestID:     req.ID,
		VehicleID:     req.VehicleID,
		SlotID:        alloc.Slot.ID,
		ZoneID:        alloc.Zone.ID,
		RequestedZone: req.RequestedZone,
		Tier:          alloc.Tier.String(),
		CrossZone:     alloc.CrossZone,
		Penalty:       req.Penalty,
		AllocatedAt:   at,
	}, nil
}

// OccupyParking marks an allocated request's slot as physically occupied.
func (s *System) OccupyParking(ctx context.Context, requestID string) (OccupancyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests.Get(requestID)
	if !ok {
		return OccupancyResult{}, fmt.Errorf("%w: %s", ErrRequestNotFound, requestID)
	}
	if !req.State.CanTransitionTo(datatypes.StateOccupied) {
		return OccupancyResult{}, fmt.Errorf("%w: cannot occupy request %s in state %s", ErrRequestState, requestID, req.State)
	}
	slot, ok := s.engine.FindSlotByID(req.AllocatedSlot)
	if !ok {
		return OccupancyResult{}, fmt.Errorf("%w: %s", ErrSlotNotFound, req.AllocatedSlot)
	}

	at := s.now()
	s.rollback.RecordOperation(OpOccupy, req, slot, at)

	req.Occupy(at)
	if v, ok := s.vehicles.Get(req.VehicleID); ok {
		v.IsParked = true
		v.CurrentRequest = req.ID
	}

	observability.RequestTransitionsTotal.WithLabelValues(string(datatypes.StateOccupied)).Inc()
	s.logger.Info("slot occupied", "request_id", requestID, "slot_id", slot.ID)
	return OccupancyResult{RequestID: requestID, SlotID: slot.ID, OccupiedAt: at}, nil
}

// ReleaseParking ends an occupied trip, frees the slot, and records the
// trip in the analytics history.
func (s *System) ReleaseParking(ctx context.Context, requestID string) (ReleaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests.Get(requestID)
	if !ok {
		return ReleaseResult{}, fmt.Errorf("%w: %s", ErrRequestNotFound, requestID)
	}
	if !req.State.CanTransitionTo(datatypes.StateReleased) {
		return ReleaseResult{}, fmt.Errorf("%w: cannot release request %s in state %s", ErrRequestState, requestID, req.State)
	}
	slot, ok := s.engine.FindSlotByID(req.AllocatedSlot)
	if !ok {
		return ReleaseResult{}, fmt.Errorf("%w: %s", ErrSlotNotFound, req.AllocatedSlot)
	}

	at := s.now()
	// Capture before-images while the slot still shows the occupied state,
	// so a rollback of this release restores the occupancy exactly.
	s.rollback.RecordOperation(OpRelease, req, slot, at)

	slot.Release()
	req.Release(at)
	if v, ok := s.vehicles.Get(req.VehicleID); ok {
		v.IsParked = false
		v.CurrentRequest = ""
	}
	s.tripHistory = append(s.tripHistory, req.View())

	observability.RequestTransitionsTotal.WithLabelValues(string(datatypes.StateReleased)).Inc()
	observability.ActiveRequests.Dec()
	s.logger.Info("slot released",
		"request_id", requestID,
		"slot_id", slot.ID,
		"duration_seconds", req.Duration().Seconds(),
	)
	return ReleaseResult{
		RequestID:       requestID,
		SlotID:          slot.ID,
		ReleasedAt:      at,
		DurationSeconds: req.Duration().Seconds(),
		Penalty:         req.Penalty,
	}, nil
}

// CancelRequest cancels a requested or allocated request, freeing any held
// slot. Cancellation is not undoable: it enters no rollback record, so
// rolling back past a cancel replays the operations around it only.
func (s *System) CancelRequest(requestID string) (CancelResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests.Get(requestID)
	if !ok {
		return CancelResult{}, fmt.Errorf("%w: %s", ErrRequestNotFound, requestID)
	}
	if !req.State.CanTransitionTo(datatypes.StateCancelled) {
		return CancelResult{}, fmt.Errorf("%w: cannot cancel request %s in state %s", ErrRequestState, requestID, req.State)
	}

	at := s.now()
	if req.AllocatedSlot != "" {
		if slot, ok := s.engine.FindSlotByID(req.AllocatedSlot); ok {
			slot.Release()
		}
	}
	req.Cancel(at)
	if v, ok := s.vehicles.Get(req.VehicleID); ok {
		v.IsParked = false
		v.CurrentRequest = ""
	}
	s.tripHistory = append(s.tripHistory, req.View())

	observability.RequestTransitionsTotal.WithLabelValues(string(datatypes.StateCancelled)).Inc()
	observability.ActiveRequests.Dec()
	s.logger.Info("request cancelled", "request_id", requestID)
	return CancelResult{RequestID: requestID, CancelledAt: at}, nil
}

// =============================================================================
// Pending queue
// =============================================================================

// QueueStatus describes the pending-request queue.
type QueueStatus struct {
	Pending  []string `json:"pending"`
	Length   int      `json:"length"`
	Capacity int      `json:"capacity"`
}

// EnqueueRequest adds a request to the pending queue for later processing.
//
// Outputs:
//   - int: The request's 1-based position in the queue.
//   - error: ErrRequestNotFound, ErrRequestState when the request is past
//     the requested state, or containers.ErrQueueFull.
func (s *System) EnqueueRequest(requestID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests.Get(requestID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrRequestNotFound, requestID)
	}
	if req.State != datatypes.StateRequested {
		return 0, fmt.Errorf("%w: cannot queue request %s in state %s", ErrRequestState, requestID, req.State)
	}
	if err := s.pending.Enqueue(requestID); err != nil {
		return 0, err
	}
	observability.QueueDepth.Set(float64(s.pending.Len()))
	s.logger.Info("request queued", "request_id", requestID, "position", s.pending.Len())
	return s.pending.Len(), nil
}

// ProcessNextRequest dequeues the oldest pending request and allocates it.
// A request that was cancelled while queued is consumed without effect and
// reported via ErrRequestState.
func (s *System) ProcessNextRequest(ctx context.Context) (AllocationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requestID, ok := s.pending.Dequeue()
	if !ok {
		return AllocationResult{}, ErrQueueEmpty
	}
	observability.QueueDepth.Set(float64(s.pending.Len()))

	req, found := s.requests.Get(requestID)
	if !found {
		return AllocationResult{}, fmt.Errorf("%w: %s", ErrRequestNotFound, requestID)
	}
	return s.allocateLocked(ctx, req)
}

// QueueStatusView returns the queue contents front to back.
func (s *System) QueueStatusView() QueueStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return QueueStatus{
		Pending:  s.pending.All(),
		Length:   s.pending.Len(),
		Capacity: s.pending.Cap(),
	}
}

// =============================================================================
// Rollback
// =============================================================================

// RollbackResult reports the outcome of a rollback call.
type RollbackResult struct {
	Requested        int               `json:"requested"`
	Undone           []UndoneOperation `json:"undone"`
	RemainingHistory int               `json:"remaining_history"`
}

// RollbackOperations undoes the most recent k mutating operations.
// Non-positive k undoes nothing and reports the current history size.
func (s *System) RollbackOperations(ctx context.Context, k int) RollbackResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if k < 0 {
		k = 0
	}
	undone := s.rollback.Rollback(ctx, k, s.engine, s.requests)
	for range undone {
		observability.RollbacksTotal.Inc()
	}
	return RollbackResult{
		Requested:        k,
		Undone:           undone,
		RemainingHistory: s.rollback.HistorySize(),
	}
}

// RollbackHistory returns the newest n undoable operations without
// consuming them.
func (s *System) RollbackHistory(n int) []UndoneOperation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rollback.RecentOperations(n)
}

// =============================================================================
// Status and reset
// =============================================================================

// SystemStatus is the operator-facing summary of the whole system.
type SystemStatus struct {
	CityName           string             `json:"city_name"`
	Zones              []ZoneAvailability `json:"zones"`
	TotalSlots         int                `json:"total_slots"`
	AvailableSlots     int                `json:"available_slots"`
	OccupiedSlots      int                `json:"occupied_slots"`
	RegisteredVehicles int                `json:"registered_vehicles"`
	TotalRequests      int                `json:"total_requests"`
	ActiveRequests     int                `json:"active_requests"`
	PendingQueue       int                `json:"pending_queue"`
	RollbackHistory    int                `json:"rollback_history"`
	UptimeSeconds      float64            `json:"uptime_seconds"`
}

// Status returns a snapshot of system-wide counters.
func (s *System) Status() SystemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total, available int
	for _, z := range s.zones.Values() {
		total += z.TotalSlots()
		available += z.AvailableSlotCount()
	}

	active := 0
	for _, r := range s.requests.Values() {
		if !r.State.IsTerminal() {
			active++
		}
	}

	return SystemStatus{
		CityName:           s.cityName,
		Zones:              s.engine.ZoneAvailability(),
		TotalSlots:         total,
		AvailableSlots:     available,
		OccupiedSlots:      total - available,
		RegisteredVehicles: s.vehicles.Len(),
		TotalRequests:      s.requests.Len(),
		ActiveRequests:     active,
		PendingQueue:       s.pending.Len(),
		RollbackHistory:    s.rollback.HistorySize(),
		UptimeSeconds:      s.now().Sub(s.startedAt).Seconds(),
	}
}

// Reset clears all vehicles, requests, queue contents, rollback history,
// and trip history, and frees every slot. The zone topology stays.
func (s *System) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, zone := range s.zones.Values() {
		for _, area := range zone.Areas() {
			for _, slot := range area.Slots() {
				slot.Release()
			}
		}
	}
	s.vehicles.Clear()
	s.requests.Clear()
	s.pending.Clear()
	s.rollback.ClearHistory()
	s.tripHistory = nil
	s.requestCounter = 0

	observability.ActiveRequests.Set(0)
	observability.QueueDepth.Set(0)
	s.logger.Info("system reset")
}
