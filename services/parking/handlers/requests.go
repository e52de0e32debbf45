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

	"github.com/AleutianAI/AleutianPark/services/parking/core"
)

// CreateParkingRequest is the body for POST /v1/requests.
type CreateParkingRequest struct {
	VehicleID     string `json:"vehicle_id" binding:"required"`
	RequestedZone string `json:"requested_zone" binding:"required"`
	AutoAllocate  bool   `json:"auto_allocate"`
}

// CreateRequest opens a parking request, optionally allocating immediately.
func CreateRequest(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateParkingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		view, allocation, err := system.CreateRequest(c.Request.Context(), req.VehicleID, req.RequestedZone, req.AutoAllocate)
		if err != nil {
			respondError(c, err)
			return
		}
		slog.Info("parking request created via API",
			"request_id", view.RequestID,
			"vehicle_id", req.VehicleID,
			"auto_allocate", req.AutoAllocate,
		)
		body := gin.H{"success": true, "request": view}
		if allocation != nil {
			body["allocation"] = allocation
		}
		c.JSON(http.StatusCreated, body)
	}
}

// ListRequests returns every request.
func ListRequests(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		requests := system.RequestViews()
		c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
	}
}

// GetRequest returns one request with its full state history.
func GetRequest(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := system.RequestView(c.Param("requestId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// AllocateRequest runs the tier search for a request.
func AllocateRequest(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := system.AllocateParking(c.Request.Context(), c.Param("requestId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "allocation": res})
	}
}

// OccupyRequest marks the allocated slot as physically taken.
func OccupyRequest(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := system.OccupyParking(c.Request.Context(), c.Param("requestId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "occupancy": res})
	}
}

// ReleaseRequest ends the trip and frees the slot.
func ReleaseRequest(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := system.ReleaseParking(c.Request.Context(), c.Param("requestId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "release": res})
	}
}

// CancelRequest cancels a requested or allocated request.
func CancelRequest(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := system.CancelRequest(c.Param("requestId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cancellation": res})
	}
}
