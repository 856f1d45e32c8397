package services

import (
	"time"

	"shift-track/internal/clock"
	"shift-track/internal/timeutil"
)

// ReminderKind identifies which shift boundary a reminder window belongs to.
type ReminderKind string

const (
	ReminderDeparture  ReminderKind = "departure"
	ReminderShiftStart ReminderKind = "shift_start"
	ReminderShiftEnd   ReminderKind = "shift_end"
)

// ReminderWindow is one computed reminder instant for the applied shift.
// External collaborators (notification scheduling, weather-alert checks)
// consume these; the core only computes them.
type ReminderWindow struct {
	Kind      ReminderKind `json:"kind"`
	ShiftID   string       `json:"shiftId"`
	ShiftName string       `json:"shiftName"`
	At        time.Time    `json:"at"`
}

// ReminderService computes the reminder windows of the applied shift using
// the same wrap-aware time arithmetic as the derivation engine.
type ReminderService struct {
	shifts *ShiftService
	clock  clock.Clock
}

// NewReminderService constructs a ReminderService.
func NewReminderService(shifts *ShiftService, clk clock.Clock) *ReminderService {
	return &ReminderService{shifts: shifts, clock: clk}
}

// NextWindows returns the reminder windows for the current day: departure
// reminder (ReminderBefore minutes ahead of the departure time), shift start
// and end-of-shift reminder (ReminderAfter minutes past the end time). An
// overnight shift pushes the end reminder to the next calendar day. Returns
// an empty slice when no shift is applied or today is not an applied
// weekday.
func (s *ReminderService) NextWindows() ([]ReminderWindow, error) {
	shift, err := s.shifts.Active()
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	if shift == nil {
		return []ReminderWindow{}, nil
	}

	applied := false
	weekday := timeutil.Weekday(now)
	for _, d := range shift.AppliedDays {
		if d == weekday {
			applied = true
			break
		}
	}
	if !applied {
		return []ReminderWindow{}, nil
	}

	departure, err := atClock(now, shift.DepartureTime)
	if err != nil {
		return nil, err
	}
	start, err := atClock(now, shift.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := atClock(now, shift.EndTime)
	if err != nil {
		return nil, err
	}
	// Overnight shift: the end boundary falls on the next day.
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	return []ReminderWindow{
		{
			Kind:      ReminderDeparture,
			ShiftID:   shift.ID,
			ShiftName: shift.Name,
			At:        departure.Add(-time.Duration(shift.ReminderBefore) * time.Minute),
		},
		{
			Kind:      ReminderShiftStart,
			ShiftID:   shift.ID,
			ShiftName: shift.Name,
			At:        start,
		},
		{
			Kind:      ReminderShiftEnd,
			ShiftID:   shift.ID,
			ShiftName: shift.Name,
			At:        end.Add(time.Duration(shift.ReminderAfter) * time.Minute),
		},
	}, nil
}

// atClock anchors an "HH:MM" wall time on the calendar day of ref.
func atClock(ref time.Time, clockTime string) (time.Time, error) {
	h, m, err := timeutil.ParseTime(clockTime)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := ref.Date()
	return time.Date(y, mo, d, h, m, 0, 0, ref.Location()), nil
}
