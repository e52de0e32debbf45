// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/AleutianPark/services/parking/core"
	"github.com/AleutianAI/AleutianPark/services/parking/handlers"
)

// SetupRoutes wires every endpoint onto the router.
func SetupRoutes(router *gin.Engine, system *core.System) {
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1 group
	v1 := router.Group("/v1")
	{
		system1 := v1.Group("/system")
		{
			system1.GET("/status", handlers.SystemStatus(system))
			system1.POST("/reset", handlers.SystemReset(system))
		}

		zones := v1.Group("/zones")
		{
			zones.GET("", handlers.ListZones(system))
			zones.POST("", handlers.CreateZone(system))
			zones.GET("/:zoneId", handlers.GetZone(system))
			zones.POST("/:zoneId/areas", handlers.CreateArea(system))
			zones.GET("/:zoneId/suggestion", handlers.SuggestZone(system))
		}

		vehicles := v1.Group("/vehicles")
		{
			vehicles.POST("", handlers.RegisterVehicle(system))
			vehicles.GET("", handlers.ListVehicles(system))
			vehicles.GET("/:vehicleId", handlers.GetVehicle(system))
		}

		requests := v1.Group("/requests")
		{
			requests.POST("", handlers.CreateRequest(system))
			requests.GET("", handlers.ListRequests(system))
			requests.GET("/:requestId", handlers.GetRequest(system))
			requests.POST("/:requestId/allocate", handlers.AllocateRequest(system))
			requests.POST("/:requestId/occupy", handlers.OccupyRequest(system))
			requests.POST("/:requestId/release", handlers.ReleaseRequest(system))
			requests.POST("/:requestId/cancel", handlers.CancelRequest(system))
		}

		queue := v1.Group("/queue")
		{
			queue.GET("", handlers.QueueStatus(system))
			queue.POST("", handlers.EnqueueRequest(system))
			queue.POST("/process", handlers.ProcessQueue(system))
		}

		rollback := v1.Group("/rollback")
		{
			rollback.POST("", handlers.Rollback(system))
			rollback.GET("/history", handlers.RollbackHistory(system))
		}

		v1.GET("/analytics", handlers.GetAnalytics(system))
		v1.GET("/trips", handlers.GetTripHistory(system))
	}
}
