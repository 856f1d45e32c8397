// Package timeutil implements the wall-clock arithmetic shared by the shift
// registry, the day-status derivation engine and the reminder scheduler.
// All callers must use the same wrap-around rule: when an end time compares
// numerically smaller than its start time, the interval crosses midnight and
// a full day is added.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// MinutesPerDay is the wrap-around adjustment for overnight intervals.
	MinutesPerDay = 24 * 60

	// DateLayout is the canonical calendar-date key format.
	DateLayout = "2006-01-02"

	// MonthLayout is the canonical month key format.
	MonthLayout = "2006-01"

	// ClockLayout is the canonical wall-clock time format.
	ClockLayout = "15:04"
)

// ParseTime parses a strict "HH:MM" string into hours and minutes.
// Out-of-range values (hours > 23, minutes > 59) are rejected; validation
// happens here, at the boundary, so the derivation engine can assume
// well-formed stored data.
func ParseTime(s string) (hours, minutes int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hours, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	minutes, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hours, minutes, nil
}

// MinuteOfDay converts a parsed wall-clock time to its minute offset.
func MinuteOfDay(hours, minutes int) int {
	return hours*60 + minutes
}

// ParseMinuteOfDay parses "HH:MM" directly to a minute offset.
func ParseMinuteOfDay(s string) (int, error) {
	h, m, err := ParseTime(s)
	if err != nil {
		return 0, err
	}
	return MinuteOfDay(h, m), nil
}

// DurationMinutes returns the elapsed minutes between two wall-clock times.
// When end < start the interval is treated as crossing midnight. The result
// is never negative for valid inputs.
func DurationMinutes(start, end string) (int, error) {
	startMin, err := ParseMinuteOfDay(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseMinuteOfDay(end)
	if err != nil {
		return 0, err
	}
	if endMin < startMin {
		return MinutesPerDay - startMin + endMin, nil
	}
	return endMin - startMin, nil
}

// WorkHours computes the worked hours between a check-in and a check-out
// time, wrap-aware and rounded to one decimal place. Returns 0 when either
// side is missing or malformed, mirroring the tolerant read path: absent
// data is "no hours", not an error.
func WorkHours(checkIn, checkOut string) float64 {
	if checkIn == "" || checkOut == "" {
		return 0
	}
	minutes, err := DurationMinutes(checkIn, checkOut)
	if err != nil {
		return 0
	}
	return Round1(float64(minutes) / 60)
}

// Round1 rounds half-up to one fractional digit. Used for every displayed
// hour total so that stored and computed values always agree.
func Round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// FormatClock renders an instant as "HH:MM".
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatDate renders an instant as "yyyy-MM-dd".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatMonth renders an instant as "yyyy-MM".
func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}

// Weekday returns the ISO-style weekday number, 1 (Monday) to 7 (Sunday).
func Weekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfWeek returns midnight of the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -(Weekday(t) - 1))
}

// FormatHoursMinutes renders a minute count as the compact "XhYp" form used
// in day-status remarks, e.g. 90 -> "1h30p".
func FormatHoursMinutes(minutes int) string {
	return fmt.Sprintf("%dh%dp", minutes/60, minutes%60)
}
