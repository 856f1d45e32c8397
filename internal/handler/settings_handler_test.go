package handler

import (
	"net/http"
	"testing"

	"shift-track/internal/models"

	"github.com/stretchr/testify/assert"
)

// TestGetSettings tests defaults through the HTTP surface
func TestGetSettings(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	w := perform(t, http.MethodGet, "/api/settings", nil, server.GetSettings)
	var settings models.Settings
	decodeSuccess(t, w, &settings)
	assert.False(t, settings.SimpleButtonMode)
	assert.Equal(t, "ask_weekly", settings.ShiftReminderMode)
}

// TestUpdateSettings tests the partial patch endpoint
func TestUpdateSettings(t *testing.T) {
	t.Parallel()
	server, _ := setupTestServer(t)

	w := perform(t, http.MethodPut, "/api/settings",
		map[string]any{"simpleButtonMode": true}, server.UpdateSettings)
	var settings models.Settings
	decodeSuccess(t, w, &settings)
	assert.True(t, settings.SimpleButtonMode)
	assert.True(t, settings.WeatherAlertsEnabled, "untouched fields keep their defaults")

	// The patch persists.
	w = perform(t, http.MethodGet, "/api/settings", nil, server.GetSettings)
	decodeSuccess(t, w, &settings)
	assert.True(t, settings.SimpleButtonMode)
}
