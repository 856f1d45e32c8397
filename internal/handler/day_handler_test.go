package handler

import (
	"net/http"
	"testing"

	"shift-track/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestGetDay tests the single-date view and its validation
func TestGetDay(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	// Future date reads as not_set.
	w := perform(t, http.MethodGet, "/api/days/2026-09-01", nil,
		server.GetDay, gin.Param{Key: "date", Value: "2026-09-01"})
	var record models.DayRecord
	decodeSuccess(t, w, &record)
	assert.Equal(t, models.DayStatusNotSet, record.Status)

	// Past date without data reads as absent.
	w = perform(t, http.MethodGet, "/api/days/2026-08-24", nil,
		server.GetDay, gin.Param{Key: "date", Value: "2026-08-24"})
	decodeSuccess(t, w, &record)
	assert.Equal(t, models.DayStatusAbsent, record.Status)

	// Malformed date is rejected.
	w = perform(t, http.MethodGet, "/api/days/today", nil,
		server.GetDay, gin.Param{Key: "date", Value: "today"})
	code := decodeError(t, w, http.StatusBadRequest)
	assert.Equal(t, "VALIDATION_FAILED", code)
}

// TestSetDayStatus tests manual overrides over HTTP
func TestSetDayStatus(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	w := perform(t, http.MethodPut, "/api/days/2026-08-28/status",
		map[string]any{"status": "leave"},
		server.SetDayStatus, gin.Param{Key: "date", Value: "2026-08-28"})
	var record models.DayRecord
	decodeSuccess(t, w, &record)
	assert.Equal(t, models.DayStatusLeave, record.Status)
	assert.True(t, record.Manual)

	// Derived statuses cannot be set manually.
	w = perform(t, http.MethodPut, "/api/days/2026-08-28/status",
		map[string]any{"status": "full_work"},
		server.SetDayStatus, gin.Param{Key: "date", Value: "2026-08-28"})
	code := decodeError(t, w, http.StatusBadRequest)
	assert.Equal(t, "VALIDATION_FAILED", code)
}

// TestGetWeek tests the seven-day view with and without an anchor
func TestGetWeek(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	w := perform(t, http.MethodGet, "/api/days?anchor=2026-09-02", nil, server.GetWeek)
	var week []models.DayRecord
	decodeSuccess(t, w, &week)
	assert.Len(t, week, 7)
	assert.Equal(t, "2026-08-31", week[0].Date)
	assert.Equal(t, "2026-09-06", week[6].Date)

	// Default anchor is the current week.
	w = perform(t, http.MethodGet, "/api/days", nil, server.GetWeek)
	decodeSuccess(t, w, &week)
	assert.Len(t, week, 7)

	// Malformed anchor is rejected.
	w = perform(t, http.MethodGet, "/api/days?anchor=lastweek", nil, server.GetWeek)
	code := decodeError(t, w, http.StatusBadRequest)
	assert.Equal(t, "VALIDATION_FAILED", code)
}
