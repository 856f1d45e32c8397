package services

import (
	"testing"

	"shift-track/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedRecords writes day records straight into storage for aggregation tests.
func seedRecords(t *testing.T, env *testEnv, records []models.DayRecord) {
	t.Helper()
	require.NoError(t, saveJSON(env.store, KeyDailyStatus, records))
}

// TestStatsService_MonthStats tests counting and hour totals over one month
func TestStatsService_MonthStats(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	seedRecords(t, env, []models.DayRecord{
		{Date: "2026-08-03", Status: models.DayStatusFullWork, TotalHours: 9.5},
		{Date: "2026-08-04", Status: models.DayStatusFullWork, TotalHours: 9.5},
		{Date: "2026-08-05", Status: models.DayStatusLateEarly, TotalHours: 9.0},
		{Date: "2026-08-06", Status: models.DayStatusMissingAction, TotalHours: 4.5},
		{Date: "2026-08-07", Status: models.DayStatusLeave},
		{Date: "2026-08-10", Status: models.DayStatusSick},
		{Date: "2026-08-11", Status: models.DayStatusHoliday},
		{Date: "2026-08-12", Status: models.DayStatusAbsent},
		// A different month must not leak in.
		{Date: "2026-07-31", Status: models.DayStatusFullWork, TotalHours: 9.5},
	})

	stats, err := env.stats.MonthStats("2026-08")
	require.NoError(t, err)

	assert.Equal(t, 8, stats.TotalDays)
	assert.Equal(t, 2, stats.FullWork)
	assert.Equal(t, 1, stats.LateEarly)
	assert.Equal(t, 1, stats.MissingAction)
	assert.Equal(t, 1, stats.Leave)
	assert.Equal(t, 1, stats.Sick)
	assert.Equal(t, 1, stats.Holiday)
	assert.Equal(t, 1, stats.Absent)
	assert.InDelta(t, 32.5, stats.TotalHours, 1e-9)
	assert.InDelta(t, 4.1, stats.AverageHours, 1e-9)
}

// TestStatsService_EmptyMonth tests the zero-guard on the average
func TestStatsService_EmptyMonth(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	stats, err := env.stats.MonthStats("2026-01")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalDays)
	assert.Zero(t, stats.TotalHours)
	assert.Zero(t, stats.AverageHours)
}

// TestStatsService_InvalidMonth tests month key validation
func TestStatsService_InvalidMonth(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	for _, month := range []string{"2026", "2026-13", "08-2026", "2026-8", "garbage"} {
		_, err := env.stats.MonthStats(month)
		assert.Error(t, err, "month %q", month)
	}
}

// TestStatsService_MonthlyReport tests the sorted report bundle
func TestStatsService_MonthlyReport(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	seedRecords(t, env, []models.DayRecord{
		{Date: "2026-08-10", Status: models.DayStatusFullWork, TotalHours: 9.5},
		{Date: "2026-08-03", Status: models.DayStatusFullWork, TotalHours: 9.5},
		{Date: "2026-08-05", Status: models.DayStatusLeave},
	})

	report, err := env.stats.MonthlyReport("2026-08")
	require.NoError(t, err)

	assert.Equal(t, "2026-08", report.Month)
	assert.NotEmpty(t, report.GeneratedAt)
	assert.Equal(t, 3, report.Summary.TotalDays)

	require.Len(t, report.Details, 3)
	assert.Equal(t, "2026-08-03", report.Details[0].Date)
	assert.Equal(t, "2026-08-05", report.Details[1].Date)
	assert.Equal(t, "2026-08-10", report.Details[2].Date)
}
