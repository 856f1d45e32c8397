package models

// Shift is a named, recurring work-time window. Times are wall-clock "HH:MM"
// strings; AppliedDays uses weekday numbers 1 (Monday) to 7 (Sunday).
type Shift struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DepartureTime  string `json:"departureTime"`
	StartTime      string `json:"startTime"`
	OfficeEndTime  string `json:"officeEndTime"`
	EndTime        string `json:"endTime"`
	ReminderBefore int    `json:"reminderBefore"`
	ReminderAfter  int    `json:"reminderAfter"`
	AppliedDays    []int  `json:"appliedDays"`
	IsApplied      bool   `json:"isApplied"`
}

// ActionRecord is one entry in the per-day action trail.
type ActionRecord struct {
	Type      ActionType `json:"type"`
	Time      string     `json:"time"`
	Timestamp string     `json:"timestamp"`
	Icon      string     `json:"icon"`
}

// StatusSnapshot is the single current-status record. Date carries the ISO
// instant of the last update; a snapshot from a previous calendar day reads
// as not_started (lazy rollover, applied on read).
type StatusSnapshot struct {
	Status  WorkStatus     `json:"status"`
	Date    string         `json:"date"`
	History []ActionRecord `json:"history"`
}

// ActionLog is the append-only-per-day record of attendance actions, one per
// calendar date. Time fields are "HH:MM"; Timestamp fields are full ISO
// instants kept for audit. Fields are filled monotonically: a repeated action
// overwrites its own time but never clears the others.
type ActionLog struct {
	Date              string `json:"date"`
	ShiftID           string `json:"shiftId,omitempty"`
	ShiftName         string `json:"shiftName,omitempty"`
	GoWorkTime        string `json:"goWorkTime,omitempty"`
	GoWorkTimestamp   string `json:"goWorkTimestamp,omitempty"`
	CheckInTime       string `json:"checkInTime,omitempty"`
	CheckInTimestamp  string `json:"checkInTimestamp,omitempty"`
	CheckOutTime      string `json:"checkOutTime,omitempty"`
	CheckOutTimestamp string `json:"checkOutTimestamp,omitempty"`
	CompleteTime      string `json:"completeTime,omitempty"`
	CompleteTimestamp string `json:"completeTimestamp,omitempty"`
	PunchTime         string `json:"punchTime,omitempty"`
	PunchTimestamp    string `json:"punchTimestamp,omitempty"`
}

// DayRecord is the persisted derived status for one calendar date. Manual
// marks records set explicitly by the user (leave/sick/holiday/absent);
// automatic derivation does not overwrite a manual record until a new action
// is logged for that date.
type DayRecord struct {
	Date         string    `json:"date"`
	Status       DayStatus `json:"status"`
	CheckInTime  string    `json:"checkInTime,omitempty"`
	CheckOutTime string    `json:"checkOutTime,omitempty"`
	TotalHours   float64   `json:"totalHours"`
	Remarks      string    `json:"remarks,omitempty"`
	ShiftID      string    `json:"shiftId,omitempty"`
	ShiftName    string    `json:"shiftName,omitempty"`
	Manual       bool      `json:"manual,omitempty"`
	CreatedAt    string    `json:"createdAt,omitempty"`
	UpdatedAt    string    `json:"updatedAt,omitempty"`
}

// MonthlyStats aggregates the derived day statuses of one month.
type MonthlyStats struct {
	TotalDays     int     `json:"totalDays"`
	FullWork      int     `json:"fullWork"`
	MissingAction int     `json:"missingAction"`
	Leave         int     `json:"leave"`
	Sick          int     `json:"sick"`
	Holiday       int     `json:"holiday"`
	Absent        int     `json:"absent"`
	LateEarly     int     `json:"lateEarly"`
	TotalHours    float64 `json:"totalHours"`
	AverageHours  float64 `json:"averageHours"`
}

// MonthlyReport bundles a month's stats with its raw day records, sorted
// ascending by date. Computed on demand, never persisted.
type MonthlyReport struct {
	Month       string       `json:"month"`
	GeneratedAt string       `json:"generatedAt"`
	Summary     MonthlyStats `json:"summary"`
	Details     []DayRecord  `json:"details"`
}

// Settings are the user-level application settings the core consults.
type Settings struct {
	SimpleButtonMode     bool   `json:"simpleButtonMode"`
	WeatherAlertsEnabled bool   `json:"weatherAlertsEnabled"`
	NoteRemindersEnabled bool   `json:"noteRemindersEnabled"`
	ShiftReminderMode    string `json:"shiftReminderMode"`
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		SimpleButtonMode:     false,
		WeatherAlertsEnabled: true,
		NoteRemindersEnabled: true,
		ShiftReminderMode:    "ask_weekly",
	}
}
