package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"shift-track/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateShift_Success tests shift creation through the HTTP surface
func TestCreateShift_Success(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	w := perform(t, http.MethodPost, "/api/shifts", validShiftBody("Day", true), server.CreateShift)

	var shift models.Shift
	decodeSuccess(t, w, &shift)
	assert.NotEmpty(t, shift.ID)
	assert.Equal(t, "Day", shift.Name)
	assert.True(t, shift.IsApplied)
}

// TestCreateShift_InvalidJSON tests the binding failure path
func TestCreateShift_InvalidJSON(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	w := perform(t, http.MethodPost, "/api/shifts", map[string]any{"name": "No Times"}, server.CreateShift)
	code := decodeError(t, w, http.StatusBadRequest)
	assert.Equal(t, "INVALID_JSON", code)
}

// TestCreateShift_InvalidTime tests boundary validation surfacing as 400
func TestCreateShift_InvalidTime(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	body := validShiftBody("Bad", false)
	body["startTime"] = "25:00"

	w := perform(t, http.MethodPost, "/api/shifts", body, server.CreateShift)
	code := decodeError(t, w, http.StatusBadRequest)
	assert.Equal(t, "VALIDATION_FAILED", code)
}

// TestListShifts tests the registry listing
func TestListShifts(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	w := perform(t, http.MethodPost, "/api/shifts", validShiftBody("One", false), server.CreateShift)
	decodeSuccess(t, w, nil)
	w = perform(t, http.MethodPost, "/api/shifts", validShiftBody("Two", false), server.CreateShift)
	decodeSuccess(t, w, nil)

	w = perform(t, http.MethodGet, "/api/shifts", nil, server.ListShifts)
	var shifts []models.Shift
	decodeSuccess(t, w, &shifts)
	assert.Len(t, shifts, 2)
}

// TestUpdateShift_NotFound tests the 404 path
func TestUpdateShift_NotFound(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	w := perform(t, http.MethodPut, "/api/shifts/missing", validShiftBody("X", false),
		server.UpdateShift, gin.Param{Key: "id", Value: "missing"})
	code := decodeError(t, w, http.StatusNotFound)
	assert.Equal(t, "NOT_FOUND", code)
}

// TestApplyShift tests switching the applied shift over HTTP
func TestApplyShift(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	var first, second models.Shift
	decodeSuccess(t, perform(t, http.MethodPost, "/api/shifts", validShiftBody("First", true), server.CreateShift), &first)
	decodeSuccess(t, perform(t, http.MethodPost, "/api/shifts", validShiftBody("Second", false), server.CreateShift), &second)

	w := perform(t, http.MethodPost, "/api/shifts/"+second.ID+"/apply", nil,
		server.ApplyShift, gin.Param{Key: "id", Value: second.ID})
	var applied models.Shift
	decodeSuccess(t, w, &applied)
	assert.True(t, applied.IsApplied)

	w = perform(t, http.MethodGet, "/api/shifts/active", nil, server.GetActiveShift)
	var active models.Shift
	decodeSuccess(t, w, &active)
	assert.Equal(t, second.ID, active.ID)
}

// TestGetActiveShift_None tests that no applied shift yields null data, not
// an error
func TestGetActiveShift_None(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	w := perform(t, http.MethodGet, "/api/shifts/active", nil, server.GetActiveShift)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 0, envelope.Code)
	// A nil shift serializes to null which the envelope omits entirely.
	if len(envelope.Data) > 0 {
		assert.Equal(t, "null", string(envelope.Data))
	}
}

// TestDeleteShift tests removal and the not-found path
func TestDeleteShift(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	var shift models.Shift
	decodeSuccess(t, perform(t, http.MethodPost, "/api/shifts", validShiftBody("Doomed", false), server.CreateShift), &shift)

	w := perform(t, http.MethodDelete, "/api/shifts/"+shift.ID, nil,
		server.DeleteShift, gin.Param{Key: "id", Value: shift.ID})
	decodeSuccess(t, w, nil)

	w = perform(t, http.MethodDelete, "/api/shifts/"+shift.ID, nil,
		server.DeleteShift, gin.Param{Key: "id", Value: shift.ID})
	code := decodeError(t, w, http.StatusNotFound)
	assert.Equal(t, "NOT_FOUND", code)
}
