// Package services implements the attendance domain: shift registry, action
// logging and the work-status machine, day-status derivation, monthly
// aggregation, settings and reminder windows.
package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"shift-track/internal/store"
)

// Storage keys. Each key holds one JSON document; services serialize every
// mutation as a read-modify-write cycle behind their own mutex.
const (
	KeyShifts        = "shifts"
	KeyActiveShiftID = "active_shift_id"
	KeyWorkLogs      = "work_logs"
	KeyWorkStatus    = "work_status"
	KeyDailyStatus   = "daily_work_status"
	KeySettings      = "settings"
)

// ErrShiftNotFound is returned when a shift id has no match in the registry.
var ErrShiftNotFound = errors.New("shift not found")

// ErrInvalidShift is returned when a shift definition fails validation.
var ErrInvalidShift = errors.New("invalid shift definition")

// ErrInvalidAction is returned for an action outside the closed vocabulary.
var ErrInvalidAction = errors.New("invalid action type")

// ErrInvalidDayStatus is returned when a manual day status is not one of
// leave, sick, holiday or absent.
var ErrInvalidDayStatus = errors.New("status is not a manual day status")

// loadJSON reads and unmarshals the value under key into out. A missing key
// leaves out untouched and returns false, which is not an error.
func loadJSON(s store.Store, key string, out any) (bool, error) {
	data, err := s.Get(key)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return true, nil
}

// saveJSON marshals v and stores it under key without expiry.
func saveJSON(s store.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	if err := s.Set(key, data, 0); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}
