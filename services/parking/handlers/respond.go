// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers implements the HTTP handlers for the parking service.
// Each handler is a closure over the system aggregate so tests can stand
// up a router against a throwaway system.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/AleutianPark/services/parking/containers"
	"github.com/AleutianAI/AleutianPark/services/parking/core"
)

// respondError maps the core error taxonomy onto HTTP statuses.
//
// Not-found errors are 404, state conflicts and duplicates are 409, and a
// full queue is 409 as well. "No slot available" is NOT an HTTP error: it
// is a legitimate allocation outcome and comes back as 200 with
// success=false so clients can queue or retry.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrNoSlotAvailable), errors.Is(err, core.ErrQueueEmpty):
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, core.ErrZoneNotFound),
		errors.Is(err, core.ErrVehicleNotFound),
		errors.Is(err, core.ErrRequestNotFound),
		errors.Is(err, core.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, core.ErrRequestState),
		errors.Is(err, core.ErrVehicleExists),
		errors.Is(err, containers.ErrQueueFull):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}
