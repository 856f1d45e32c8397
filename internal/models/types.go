// Package models defines the persisted data structures and the closed status
// vocabularies of the attendance domain.
package models

// WorkStatus is the current position in the daily attendance flow.
type WorkStatus string

const (
	WorkStatusNotStarted  WorkStatus = "not_started"
	WorkStatusGoingToWork WorkStatus = "going_to_work"
	WorkStatusCheckedIn   WorkStatus = "checked_in"
	WorkStatusCheckedOut  WorkStatus = "checked_out"
	WorkStatusCompleted   WorkStatus = "completed"
)

// DayStatus is the categorical attendance outcome for one calendar date.
type DayStatus string

const (
	DayStatusFullWork      DayStatus = "full_work"
	DayStatusMissingAction DayStatus = "missing_action"
	DayStatusLeave         DayStatus = "leave"
	DayStatusSick          DayStatus = "sick"
	DayStatusHoliday       DayStatus = "holiday"
	DayStatusAbsent        DayStatus = "absent"
	DayStatusLateEarly     DayStatus = "late_early"
	DayStatusNotSet        DayStatus = "not_set"
)

// IsManual reports whether the status is one a user sets explicitly rather
// than one the derivation engine computes.
func (s DayStatus) IsManual() bool {
	switch s {
	case DayStatusLeave, DayStatusSick, DayStatusHoliday, DayStatusAbsent:
		return true
	case DayStatusFullWork, DayStatusMissingAction, DayStatusLateEarly, DayStatusNotSet:
		return false
	}
	return false
}

// Valid reports whether the status belongs to the closed vocabulary.
func (s DayStatus) Valid() bool {
	switch s {
	case DayStatusFullWork, DayStatusMissingAction, DayStatusLeave, DayStatusSick,
		DayStatusHoliday, DayStatusAbsent, DayStatusLateEarly, DayStatusNotSet:
		return true
	}
	return false
}

// ActionType is a user-initiated attendance event.
type ActionType string

const (
	ActionGoWork   ActionType = "go_work"
	ActionCheckIn  ActionType = "check_in"
	ActionCheckOut ActionType = "check_out"
	ActionComplete ActionType = "complete"
	ActionPunch    ActionType = "punch"
)

// Valid reports whether the action belongs to the closed vocabulary.
func (a ActionType) Valid() bool {
	switch a {
	case ActionGoWork, ActionCheckIn, ActionCheckOut, ActionComplete, ActionPunch:
		return true
	}
	return false
}

// Icon returns the display icon associated with the action, recorded in the
// action history so clients render the trail without their own mapping.
func (a ActionType) Icon() string {
	switch a {
	case ActionGoWork:
		return "briefcase-outline"
	case ActionCheckIn:
		return "log-in-outline"
	case ActionCheckOut:
		return "log-out-outline"
	case ActionComplete:
		return "checkmark-circle-outline"
	case ActionPunch:
		return "create-outline"
	}
	return ""
}
