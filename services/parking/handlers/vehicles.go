// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/AleutianPark/pkg/validation"
	"github.com/AleutianAI/AleutianPark/services/parking/core"
)

// RegisterVehicleRequest is the body for POST /v1/vehicles.
type RegisterVehicleRequest struct {
	VehicleID     string `json:"vehicle_id" binding:"required"`
	PreferredZone string `json:"preferred_zone" binding:"required"`
	VehicleType   string `json:"vehicle_type"`
}

// RegisterVehicle adds a vehicle to the system.
func RegisterVehicle(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterVehicleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := validation.ValidateID("vehicle_id", req.VehicleID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		vehicle, err := system.RegisterVehicle(req.VehicleID, req.PreferredZone, req.VehicleType)
		if err != nil {
			respondError(c, err)
			return
		}
		slog.Info("vehicle registered via API", "vehicle_id", req.VehicleID)
		c.JSON(http.StatusCreated, vehicle)
	}
}

// ListVehicles returns every registered vehicle.
func ListVehicles(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicles := system.VehicleViews()
		c.JSON(http.StatusOK, gin.H{"vehicles": vehicles, "count": len(vehicles)})
	}
}

// GetVehicle returns one vehicle.
func GetVehicle(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicle, err := system.VehicleView(c.Param("vehicleId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, vehicle)
	}
}
