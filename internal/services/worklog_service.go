package services

import (
	"sync"
	"time"

	"shift-track/internal/clock"
	"shift-track/internal/models"
	"shift-track/internal/store"
	"shift-track/internal/timeutil"

	"github.com/sirupsen/logrus"
)

// WorkLogService drives the daily attendance flow: it owns the current
// work-status snapshot and the per-day action log, and triggers day-status
// derivation after the actions that close out a day.
type WorkLogService struct {
	store     store.Store
	shifts    *ShiftService
	settings  *SettingsService
	dayStatus *DayStatusService
	clock     clock.Clock
	mu        sync.Mutex
}

// NewWorkLogService constructs a WorkLogService.
func NewWorkLogService(
	s store.Store,
	shifts *ShiftService,
	settings *SettingsService,
	dayStatus *DayStatusService,
	clk clock.Clock,
) *WorkLogService {
	return &WorkLogService{
		store:     s,
		shifts:    shifts,
		settings:  settings,
		dayStatus: dayStatus,
		clock:     clk,
	}
}

// EffectiveSnapshot interprets a stored snapshot at the given instant. A
// snapshot from a previous calendar day reads as not_started with an empty
// history; the stored value itself is only replaced by the next write.
func EffectiveSnapshot(stored *models.StatusSnapshot, now time.Time) models.StatusSnapshot {
	fresh := models.StatusSnapshot{
		Status:  models.WorkStatusNotStarted,
		Date:    now.Format(time.RFC3339),
		History: []models.ActionRecord{},
	}
	if stored == nil {
		return fresh
	}
	storedAt, err := time.Parse(time.RFC3339, stored.Date)
	if err != nil || !timeutil.SameDay(storedAt, now) {
		return fresh
	}
	return *stored
}

// nextStatus maps an action to the status it implies. Deliberately
// permissive: an out-of-sequence action is accepted and the status simply
// becomes whatever the action says, matching the recorded user intent.
func nextStatus(current models.WorkStatus, action models.ActionType, simpleMode bool) models.WorkStatus {
	switch action {
	case models.ActionGoWork:
		if simpleMode {
			return models.WorkStatusCompleted
		}
		return models.WorkStatusGoingToWork
	case models.ActionCheckIn:
		return models.WorkStatusCheckedIn
	case models.ActionCheckOut:
		return models.WorkStatusCheckedOut
	case models.ActionComplete:
		return models.WorkStatusCompleted
	case models.ActionPunch:
		// A punch is recorded in the trail but never moves the machine.
		return current
	}
	return current
}

// PerformAction records one attendance action: it advances the status
// snapshot, appends to the action history, upserts today's log entry and,
// for the day-closing actions (check_out, complete, go_work in simple mode),
// triggers day-status derivation.
func (s *WorkLogService) PerformAction(action models.ActionType) (models.StatusSnapshot, error) {
	if !action.Valid() {
		return models.StatusSnapshot{}, ErrInvalidAction
	}

	settings, err := s.settings.Get()
	if err != nil {
		return models.StatusSnapshot{}, err
	}
	simpleMode := settings.SimpleButtonMode

	s.mu.Lock()
	now := s.clock.Now()
	timeString := timeutil.FormatClock(now)
	timestamp := now.Format(time.RFC3339)
	today := timeutil.FormatDate(now)

	stored, err := s.loadSnapshot()
	if err != nil {
		s.mu.Unlock()
		return models.StatusSnapshot{}, err
	}
	current := EffectiveSnapshot(stored, now)

	snapshot := models.StatusSnapshot{
		Status: nextStatus(current.Status, action, simpleMode),
		Date:   timestamp,
		History: append(current.History, models.ActionRecord{
			Type:      action,
			Time:      timeString,
			Timestamp: timestamp,
			Icon:      action.Icon(),
		}),
	}
	if err := saveJSON(s.store, KeyWorkStatus, snapshot); err != nil {
		s.mu.Unlock()
		return models.StatusSnapshot{}, err
	}

	if err := s.upsertLog(today, action, timeString, timestamp); err != nil {
		s.mu.Unlock()
		return models.StatusSnapshot{}, err
	}
	s.mu.Unlock()

	// A fresh check-in/out supersedes a manual day-status override.
	if err := s.dayStatus.noteAction(today, action); err != nil {
		return models.StatusSnapshot{}, err
	}

	if action == models.ActionCheckOut || action == models.ActionComplete ||
		(simpleMode && action == models.ActionGoWork) {
		if err := s.dayStatus.Derive(today); err != nil {
			return models.StatusSnapshot{}, err
		}
	}

	logrus.WithFields(logrus.Fields{"action": action, "status": snapshot.Status}).Info("Work action recorded")
	return snapshot, nil
}

// upsertLog fills the action's field in today's log entry, creating the
// entry on the first action of the day with a snapshot of the applied shift.
// Fields fill monotonically: a repeated action overwrites its own time only.
func (s *WorkLogService) upsertLog(date string, action models.ActionType, timeString, timestamp string) error {
	var logs []models.ActionLog
	if _, err := loadJSON(s.store, KeyWorkLogs, &logs); err != nil {
		return err
	}

	var entry *models.ActionLog
	for i := range logs {
		if logs[i].Date == date {
			entry = &logs[i]
			break
		}
	}
	if entry == nil {
		logs = append(logs, models.ActionLog{Date: date})
		entry = &logs[len(logs)-1]
		if shift, err := s.shifts.Active(); err == nil && shift != nil {
			entry.ShiftID = shift.ID
			entry.ShiftName = shift.Name
		}
	}

	switch action {
	case models.ActionGoWork:
		entry.GoWorkTime = timeString
		entry.GoWorkTimestamp = timestamp
	case models.ActionCheckIn:
		entry.CheckInTime = timeString
		entry.CheckInTimestamp = timestamp
	case models.ActionCheckOut:
		entry.CheckOutTime = timeString
		entry.CheckOutTimestamp = timestamp
	case models.ActionComplete:
		entry.CompleteTime = timeString
		entry.CompleteTimestamp = timestamp
	case models.ActionPunch:
		entry.PunchTime = timeString
		entry.PunchTimestamp = timestamp
	}

	return saveJSON(s.store, KeyWorkLogs, logs)
}

// CurrentStatus returns the effective snapshot for now. The read applies the
// lazy day rollover but never rewrites the stored value.
func (s *WorkLogService) CurrentStatus() (models.StatusSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.loadSnapshot()
	if err != nil {
		return models.StatusSnapshot{}, err
	}
	return EffectiveSnapshot(stored, s.clock.Now()), nil
}

// Log returns the action log entry for a date, nil when the date has none.
func (s *WorkLogService) Log(date string) (*models.ActionLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var logs []models.ActionLog
	if _, err := loadJSON(s.store, KeyWorkLogs, &logs); err != nil {
		return nil, err
	}
	for i := range logs {
		if logs[i].Date == date {
			return &logs[i], nil
		}
	}
	return nil, nil
}

// ResetToday rolls the whole current day back: status to not_started with an
// empty history, today's log entry removed and today's derived record
// removed. Destructive; runs to completion synchronously.
func (s *WorkLogService) ResetToday() error {
	s.mu.Lock()

	now := s.clock.Now()
	today := timeutil.FormatDate(now)

	snapshot := models.StatusSnapshot{
		Status:  models.WorkStatusNotStarted,
		Date:    now.Format(time.RFC3339),
		History: []models.ActionRecord{},
	}
	if err := saveJSON(s.store, KeyWorkStatus, snapshot); err != nil {
		s.mu.Unlock()
		return err
	}

	var logs []models.ActionLog
	if _, err := loadJSON(s.store, KeyWorkLogs, &logs); err != nil {
		s.mu.Unlock()
		return err
	}
	remaining := logs[:0]
	for _, l := range logs {
		if l.Date != today {
			remaining = append(remaining, l)
		}
	}
	if err := saveJSON(s.store, KeyWorkLogs, remaining); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	if err := s.dayStatus.RemoveDate(today); err != nil {
		return err
	}

	logrus.WithField("date", today).Info("Day reset")
	return nil
}

func (s *WorkLogService) loadSnapshot() (*models.StatusSnapshot, error) {
	var snapshot models.StatusSnapshot
	found, err := loadJSON(s.store, KeyWorkStatus, &snapshot)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &snapshot, nil
}
