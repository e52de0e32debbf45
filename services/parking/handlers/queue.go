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
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/AleutianPark/services/parking/core"
)

// EnqueueBody is the body for POST /v1/queue.
type EnqueueBody struct {
	RequestID string `json:"request_id" binding:"required"`
}

// EnqueueRequest adds a pending request to the processing queue.
func EnqueueRequest(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body EnqueueBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		position, err := system.EnqueueRequest(body.RequestID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"request_id": body.RequestID,
			"position":   position,
		})
	}
}

// ProcessQueue dequeues and allocates the oldest pending request.
func ProcessQueue(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := system.ProcessNextRequest(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "allocation": res})
	}
}

// QueueStatus returns the queue contents front to back.
func QueueStatus(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, system.QueueStatusView())
	}
}

// RollbackBody is the body for POST /v1/rollback.
type RollbackBody struct {
	Operations int `json:"operations" binding:"required,gt=0"`
}

// Rollback undoes the most recent k mutating operations.
func Rollback(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body RollbackBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		result := system.RollbackOperations(c.Request.Context(), body.Operations)
		c.JSON(http.StatusOK, gin.H{"success": true, "rollback": result})
	}
}

// RollbackHistory returns the newest undoable operations. The optional
// limit query param defaults to 10.
func RollbackHistory(system *core.System) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 10
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "limit must be a positive integer"})
				return
			}
			limit = parsed
		}
		history := system.RollbackHistory(limit)
		c.JSON(http.StatusOK, gin.H{"operations": history, "count": len(history)})
	}
}
