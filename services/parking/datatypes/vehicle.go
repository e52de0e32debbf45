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

// Vehicle is a registered vehicle. Identity, preferred zone, and type are
// immutable after registration. IsParked and CurrentRequest are maintained
// best-effort only; ParkingSlot and ParkingRequest are authoritative for
// occupancy.
type Vehicle struct {
	ID             string
	PreferredZone  string
	Type           string
	IsParked       bool
	CurrentRequest string
}

// NewVehicle registers a vehicle. An empty type defaults to "Car".
func NewVehicle(id, preferredZone, vehicleType string) *Vehicle {
	if vehicleType == "" {
		vehicleType = "Car"
	}
	return &Vehicle{
		ID:            id,
		PreferredZone: preferredZone,
		Type:          vehicleType,
	}
}

// VehicleView is the read-only JSON projection of a vehicle.
type VehicleView struct {
	VehicleID      string `json:"vehicle_id"`
	PreferredZone  string `json:"preferred_zone"`
	VehicleType    string `json:"vehicle_type"`
	IsParked       bool   `json:"is_parked"`
	CurrentRequest string `json:"current_request,omitempty"`
}

// View returns the vehicle's read-only projection.
func (v *Vehicle) View() VehicleView {
	return VehicleView{
		VehicleID:      v.ID,
		PreferredZone:  v.PreferredZone,
		VehicleType:    v.Type,
		IsParked:       v.IsParked,
		CurrentRequest: v.CurrentRequest,
	}
}
