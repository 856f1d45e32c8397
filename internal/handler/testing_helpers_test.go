package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shift-track/internal/clock"
	"shift-track/internal/services"
	"shift-track/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testClock is the fixed Monday every handler test runs at.
var testClock = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

// setupTestServer wires a Server over the full service stack with an
// in-memory store and a mock clock.
func setupTestServer(t *testing.T) (*Server, *clock.Mock) {
	t.Helper()

	s := store.NewMemoryStore()
	t.Cleanup(func() { _ = s.Close() })

	clk := clock.NewMock(testClock)
	shifts := services.NewShiftService(s)
	settings := services.NewSettingsService(s)
	dayStatus := services.NewDayStatusService(s, shifts, clk)
	workLog := services.NewWorkLogService(s, shifts, settings, dayStatus, clk)
	stats := services.NewStatsService(dayStatus, clk)
	reminders := services.NewReminderService(shifts, clk)

	server := &Server{
		Store:           s,
		ShiftService:    shifts,
		WorkLogService:  workLog,
		DayStatusSvc:    dayStatus,
		StatsService:    stats,
		SettingsService: settings,
		ReminderService: reminders,
	}
	return server, clk
}

// perform runs one request through a fresh gin context and returns the
// recorder.
func perform(t *testing.T, method, target string, body any, handler gin.HandlerFunc, params ...gin.Param) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params

	handler(c)
	return w
}

// decodeSuccess unmarshals the data field of a success envelope into out.
func decodeSuccess(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, 0, envelope.Code)
	require.Equal(t, "success", envelope.Message)
	if out != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}

// decodeError asserts the error envelope and returns its code.
func decodeError(t *testing.T, w *httptest.ResponseRecorder, wantStatus int) string {
	t.Helper()

	require.Equal(t, wantStatus, w.Code, w.Body.String())

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Code
}

// validShiftBody returns a well-formed shift creation payload.
func validShiftBody(name string, applied bool) map[string]any {
	return map[string]any{
		"name":           name,
		"departureTime":  "07:30",
		"startTime":      "08:00",
		"officeEndTime":  "17:00",
		"endTime":        "17:30",
		"reminderBefore": 15,
		"reminderAfter":  15,
		"appliedDays":    []int{1, 2, 3, 4, 5, 6, 7},
		"isApplied":      applied,
	}
}
