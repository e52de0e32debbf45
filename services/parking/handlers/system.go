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

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SystemStatus returns the system-wide counters.
func SystemStatus(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, system.Status())
	}
}

// SystemReset clears all operational state but keeps the topology.
func SystemReset(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		slog.Info("received system reset request")
		system.Reset()
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}

// GetAnalytics returns the trip-history report.
func GetAnalytics(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, system.Analytics())
	}
}

// GetTripHistory returns finished trips in completion order.
func GetTripHistory(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		trips := system.TripHistory()
		c.JSON(http.StatusOK, gin.H{"trips": trips, "count": len(trips)})
	}
}
