package services

import (
	"testing"
	"time"

	"shift-track/internal/clock"
	"shift-track/internal/models"
	"shift-track/internal/store"

	"github.com/stretchr/testify/require"
)

// testMonday is a fixed Monday used as "today" in clock-driven tests.
var testMonday = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

// testEnv bundles the full service stack over an in-memory store and a
// mock clock.
type testEnv struct {
	store     store.Store
	clock     *clock.Mock
	shifts    *ShiftService
	settings  *SettingsService
	dayStatus *DayStatusService
	workLog   *WorkLogService
	stats     *StatsService
	reminders *ReminderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s := store.NewMemoryStore()
	t.Cleanup(func() { _ = s.Close() })

	clk := clock.NewMock(testMonday)
	shifts := NewShiftService(s)
	settings := NewSettingsService(s)
	dayStatus := NewDayStatusService(s, shifts, clk)
	workLog := NewWorkLogService(s, shifts, settings, dayStatus, clk)
	stats := NewStatsService(dayStatus, clk)
	reminders := NewReminderService(shifts, clk)

	return &testEnv{
		store:     s,
		clock:     clk,
		shifts:    shifts,
		settings:  settings,
		dayStatus: dayStatus,
		workLog:   workLog,
		stats:     stats,
		reminders: reminders,
	}
}

// addAppliedShift creates and applies a standard day shift running every day
// of the week.
func (e *testEnv) addAppliedShift(t *testing.T) models.Shift {
	t.Helper()
	return e.addShift(t, ShiftParams{
		Name:           "Day",
		DepartureTime:  "07:30",
		StartTime:      "08:00",
		OfficeEndTime:  "17:00",
		EndTime:        "17:30",
		ReminderBefore: 15,
		ReminderAfter:  15,
		AppliedDays:    []int{1, 2, 3, 4, 5, 6, 7},
		IsApplied:      true,
	})
}

func (e *testEnv) addShift(t *testing.T, params ShiftParams) models.Shift {
	t.Helper()
	shift, err := e.shifts.Add(params)
	require.NoError(t, err)
	return shift
}

// performAt advances the mock clock to the given wall time on the current
// test day and performs the action.
func (e *testEnv) performAt(t *testing.T, clockTime string, action models.ActionType) models.StatusSnapshot {
	t.Helper()
	e.setClock(t, clockTime)
	snapshot, err := e.workLog.PerformAction(action)
	require.NoError(t, err)
	return snapshot
}

func (e *testEnv) setClock(t *testing.T, clockTime string) {
	t.Helper()
	parsed, err := time.Parse("15:04", clockTime)
	require.NoError(t, err)
	base := e.clock.Now()
	y, m, d := base.Date()
	e.clock.Set(time.Date(y, m, d, parsed.Hour(), parsed.Minute(), 0, 0, base.Location()))
}
