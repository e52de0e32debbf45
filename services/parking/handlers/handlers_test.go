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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianPark/services/parking/config"
	"github.com/AleutianAI/AleutianPark/services/parking/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter stands up a router over a small two-zone city.
func newTestRouter(t *testing.T) (*gin.Engine, *core.System) {
	t.Helper()
	system := core.NewSystem("Testville", config.SystemConfig{}, nil)
	system.AddZone("ZONE_A", "Alpha", []string{"ZONE_B"})
	system.AddZone("ZONE_B", "Bravo", nil)
	_, err := system.AddParkingArea("ZONE_A", "AREA_A1", "Alpha One", 2)
	require.NoError(t, err)
	_, err = system.AddParkingArea("ZONE_B", "AREA_B1", "Bravo One", 2)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/health", HealthCheck)
	v1 := router.Group("/v1")
	v1.GET("/system/status", SystemStatus(system))
	v1.POST("/system/reset", SystemReset(system))
	v1.GET("/zones", ListZones(system))
	v1.POST("/zones", CreateZone(system))
	v1.GET("/zones/:zoneId", GetZone(system))
	v1.POST("/zones/:zoneId/areas", CreateArea(system))
	v1.GET("/zones/:zoneId/suggestion", SuggestZone(system))
	v1.POST("/vehicles", RegisterVehicle(system))
	v1.GET("/vehicles/:vehicleId", GetVehicle(system))
	v1.POST("/requests", CreateRequest(system))
	v1.GET("/requests/:requestId", GetRequest(system))
	v1.POST("/requests/:requestId/allocate", AllocateRequest(system))
	v1.POST("/requests/:requestId/occupy", OccupyRequest(system))
	v1.POST("/requests/:requestId/release", ReleaseRequest(system))
	v1.POST("/requests/:requestId/cancel", CancelRequest(system))
	v1.POST("/queue", EnqueueRequest(system))
	v1.POST("/queue/process", ProcessQueue(system))
	v1.GET("/queue", QueueStatus(system))
	v1.POST("/rollback", Rollback(system))
	v1.GET("/rollback/history", RollbackHistory(system))
	v1.GET("/analytics", GetAnalytics(system))
	return router, system
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerAndRequest creates a vehicle and an un-allocated request,
// returning the request id.
func registerAndRequest(t *testing.T, router *gin.Engine, vehicleID string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/v1/vehicles", gin.H{
		"vehicle_id": vehicleID, "preferred_zone": "ZONE_A",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/requests", gin.H{
		"vehicle_id": vehicleID, "requested_zone": "ZONE_A",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	request := body["request"].(map[string]any)
	return request["request_id"].(string)
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestSystemStatusEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/v1/system/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Testville", body["city_name"])
	assert.EqualValues(t, 4, body["total_slots"])
}

func TestZoneEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/zones", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decode(t, w)["count"])

	w = doJSON(t, router, http.MethodGet, "/v1/zones/ZONE_A", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ZONE_A", body["zone_id"])
	assert.EqualValues(t, 50, body["cross_zone_penalty"])

	w = doJSON(t, router, http.MethodGet, "/v1/zones/ZONE_Z", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/zones", gin.H{
		"zone_id": "ZONE_C", "name": "Charlie",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/zones/ZONE_C/areas", gin.H{
		"area_id": "AREA_C1", "name": "Charlie One", "slots": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 3, decode(t, w)["total_slots"])

	// Invalid body: slots must be positive.
	w = doJSON(t, router, http.MethodPost, "/v1/zones/ZONE_C/areas", gin.H{
		"area_id": "AREA_C2", "name": "Bad", "slots": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVehicleEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/vehicles", gin.H{
		"vehicle_id": "CAR-1", "preferred_zone": "ZONE_A", "vehicle_type": "Truck",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Truck", decode(t, w)["vehicle_type"])

	// Duplicate registration conflicts.
	w = doJSON(t, router, http.MethodPost, "/v1/vehicles", gin.H{
		"vehicle_id": "CAR-1", "preferred_zone": "ZONE_B",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/vehicles/CAR-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodGet, "/v1/vehicles/GHOST", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing required field.
	w = doJSON(t, router, http.MethodPost, "/v1/vehicles", gin.H{"vehicle_id": "CAR-2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)
	reqID := registerAndRequest(t, router, "CAR-1")

	// Occupy before allocate conflicts.
	w := doJSON(t, router, http.MethodPost, "/v1/requests/"+reqID+"/occupy", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/requests/"+reqID+"/allocate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	allocation := body["allocation"].(map[string]any)
	assert.Equal(t, "AREA_A1_SLOT_1", allocation["slot_id"])
	assert.Equal(t, "same_zone", allocation["tier"])

	w = doJSON(t, router, http.MethodPost, "/v1/requests/"+reqID+"/occupy", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, "/v1/requests/"+reqID+"/release", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/requests/"+reqID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode(t, w)
	assert.Equal(t, "RELEASED", view["state"])
	assert.Len(t, view["state_history"], 4)
}

func TestAutoAllocateOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/vehicles", gin.H{
		"vehicle_id": "CAR-1", "preferred_zone": "ZONE_A",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/requests", gin.H{
		"vehicle_id": "CAR-1", "requested_zone": "ZONE_A", "auto_allocate": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	require.Contains(t, body, "allocation")
	request := body["request"].(map[string]any)
	assert.Equal(t, "ALLOCATED", request["state"])
}

func TestNoSlotAvailableIsNotAnHTTPError(t *testing.T) {
	router, _ := newTestRouter(t)

	// Fill all four slots.
	for _, v := range []string{"CAR-1", "CAR-2", "CAR-3", "CAR-4"} {
		id := registerAndRequest(t, router, v)
		w := doJSON(t, router, http.MethodPost, "/v1/requests/"+id+"/allocate", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	id := registerAndRequest(t, router, "CAR-5")
	w := doJSON(t, router, http.MethodPost, "/v1/requests/"+id+"/allocate", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "no slots available")
}

func TestQueueEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)
	reqID := registerAndRequest(t, router, "CAR-1")

	w := doJSON(t, router, http.MethodPost, "/v1/queue", gin.H{"request_id": reqID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["position"])

	w = doJSON(t, router, http.MethodGet, "/v1/queue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["length"])

	w = doJSON(t, router, http.MethodPost, "/v1/queue/process", nil)
	require.Equal(t, http.StatusOK, w.Code)
	allocation := decode(t, w)["allocation"].(map[string]any)
	assert.Equal(t, reqID, allocation["request_id"])

	// Empty queue is success=false, not an error status.
	w = doJSON(t, router, http.MethodPost, "/v1/queue/process", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])

	w = doJSON(t, router, http.MethodPost, "/v1/queue", gin.H{"request_id": "REQ_9999"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRollbackEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)
	reqID := registerAndRequest(t, router, "CAR-1")

	w := doJSON(t, router, http.MethodPost, "/v1/requests/"+reqID+"/allocate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/rollback/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = doJSON(t, router, http.MethodPost, "/v1/rollback", gin.H{"operations": 1})
	require.Equal(t, http.StatusOK, w.Code)
	rollback := decode(t, w)["rollback"].(map[string]any)
	assert.Len(t, rollback["undone"], 1)

	w = doJSON(t, router, http.MethodGet, "/v1/requests/"+reqID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "REQUESTED", decode(t, w)["state"])

	// Bad limits and bad bodies are 400.
	w = doJSON(t, router, http.MethodGet, "/v1/rollback/history?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, router, http.MethodPost, "/v1/rollback", gin.H{"operations": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestionEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/zones/ZONE_A/suggestion", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ZONE_A", body["suggested_zone"])

	// Fill ZONE_A so the suggestion crosses over.
	for _, v := range []string{"CAR-1", "CAR-2"} {
		id := registerAndRequest(t, router, v)
		w := doJSON(t, router, http.MethodPost, "/v1/requests/"+id+"/allocate", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/v1/zones/ZONE_A/suggestion", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "ZONE_B", body["suggested_zone"])
	assert.EqualValues(t, 50, body["penalty"])
}

func TestAnalyticsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	id := registerAndRequest(t, router, "CAR-1")
	for _, op := range []string{"allocate", "occupy", "release"} {
		w := doJSON(t, router, http.MethodPost, "/v1/requests/"+id+"/"+op, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/v1/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["completed_trips"])
	assert.Equal(t, []any{"ZONE_A"}, body["peak_zones"])
}

func TestIdentifierValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/vehicles", gin.H{
		"vehicle_id": "../etc/passwd", "preferred_zone": "ZONE_A",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/zones", gin.H{
		"zone_id": "bad zone", "name": "Spacey",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/zones/ZONE_A/areas", gin.H{
		"area_id": "_AREA", "name": "Leading underscore", "slots": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSystemResetEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	id := registerAndRequest(t, router, "CAR-1")
	w := doJSON(t, router, http.MethodPost, "/v1/requests/"+id+"/allocate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/system/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/system/status", nil)
	body := decode(t, w)
	assert.EqualValues(t, 4, body["available_slots"])
	assert.EqualValues(t, 0, body["total_requests"])
}
