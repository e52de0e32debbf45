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

// CreateZoneRequest is the body for POST /v1/zones.
type CreateZoneRequest struct {
	ZoneID        string   `json:"zone_id" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	AdjacentZones []string `json:"adjacent_zones"`
}

// CreateAreaRequest is the body for POST /v1/zones/:zoneId/areas.
type CreateAreaRequest struct {
	AreaID string `json:"area_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Slots  int    `json:"slots" binding:"required,gt=0"`
}

// ListZones returns every zone with availability summaries.
func ListZones(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		zones := system.ZoneViews()
		c.JSON(http.StatusOK, gin.H{"zones": zones, "count": len(zones)})
	}
}

// GetZone returns one zone with its areas and slots.
func GetZone(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		zone, err := system.ZoneView(c.Param("zoneId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, zone)
	}
}

// CreateZone registers a zone.
func CreateZone(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateZoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := validation.ValidateID("zone_id", req.ZoneID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := validation.ValidateIDs("adjacent_zones", req.AdjacentZones); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		zone := system.AddZone(req.ZoneID, req.Name, req.AdjacentZones)
		slog.Info("zone created via API", "zone_id", req.ZoneID)
		c.JSON(http.StatusCreated, zone)
	}
}

// CreateArea adds a parking area with provisioned slots under a zone.
func CreateArea(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAreaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := validation.ValidateID("area_id", req.AreaID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		area, err := system.AddParkingArea(c.Param("zoneId"), req.AreaID, req.Name, req.Slots)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, area)
	}
}

// SuggestZone recommends where a request for this zone would land now.
func SuggestZone(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := system.SuggestZone(c.Param("zoneId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
