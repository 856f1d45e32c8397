package services

import (
	"strings"
	"sync"
	"time"

	"shift-track/internal/clock"
	"shift-track/internal/models"
	"shift-track/internal/store"
	"shift-track/internal/timeutil"

	"github.com/sirupsen/logrus"
)

// lateTolerance is the grace period, in minutes, applied on both sides of
// the shift window before a check-in counts as late or a check-out as early.
const lateTolerance = 5

// DayStatusService derives and persists the categorical attendance status of
// each calendar day from the action log and the applied shift.
type DayStatusService struct {
	store  store.Store
	shifts *ShiftService
	clock  clock.Clock
	mu     sync.Mutex
}

// NewDayStatusService constructs a DayStatusService.
func NewDayStatusService(s store.Store, shifts *ShiftService, clk clock.Clock) *DayStatusService {
	return &DayStatusService{store: s, shifts: shifts, clock: clk}
}

// Derive recomputes and persists the status for the given date from its
// action log. A manual override (leave/sick/holiday/absent) is left alone;
// it only stops winning once a new check-in/out action clears the manual
// flag. Nothing is written when the date has no log or no shift applies.
func (s *DayStatusService) Derive(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadRecords()
	if err != nil {
		return err
	}
	if existing := findRecord(records, date); existing != nil && existing.Manual {
		logrus.WithField("date", date).Debug("Skipping derivation, manual status set")
		return nil
	}

	log, err := s.logFor(date)
	if err != nil {
		return err
	}
	if log == nil {
		return nil
	}

	shift, err := s.shiftFor(log)
	if err != nil {
		return err
	}
	if shift == nil {
		return nil
	}

	record := s.compute(log, shift)
	now := s.clock.Now().Format(time.RFC3339)
	record.UpdatedAt = now

	if existing := findRecord(records, date); existing != nil {
		record.CreatedAt = existing.CreatedAt
		*existing = record
	} else {
		record.CreatedAt = now
		records = append(records, record)
	}

	if err := saveJSON(s.store, KeyDailyStatus, records); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"date": date, "status": record.Status}).Debug("Day status derived")
	return nil
}

// compute applies the derivation rules to one action log against one shift.
func (s *DayStatusService) compute(log *models.ActionLog, shift *models.Shift) models.DayRecord {
	record := models.DayRecord{
		Date:         log.Date,
		CheckInTime:  log.CheckInTime,
		CheckOutTime: log.CheckOutTime,
		TotalHours:   timeutil.WorkHours(log.CheckInTime, log.CheckOutTime),
		ShiftID:      shift.ID,
		ShiftName:    shift.Name,
	}

	var remarks []string
	if log.GoWorkTime != "" && log.CheckInTime != "" && log.CheckOutTime != "" && log.CompleteTime != "" {
		record.Status = models.DayStatusFullWork
	} else {
		record.Status = models.DayStatusMissingAction
		remarks = append(remarks, "missing some check-in actions")
	}

	// Lateness and early departure are only judged when both punches exist.
	if log.CheckInTime != "" && log.CheckOutTime != "" {
		lateMin, earlyMin := s.windowViolations(log, shift)
		if lateMin > 0 {
			record.Status = models.DayStatusLateEarly
			remarks = append(remarks, "late "+timeutil.FormatHoursMinutes(lateMin))
		}
		if earlyMin > 0 {
			record.Status = models.DayStatusLateEarly
			remarks = append(remarks, "left early "+timeutil.FormatHoursMinutes(earlyMin))
		}
	}

	record.Remarks = strings.Join(remarks, ", ")
	return record
}

// windowViolations returns how many minutes the check-in is past shift start
// and the check-out short of shift end, each 0 when within the tolerance.
// Overnight shifts wrap: a shift end hour numerically below the start hour,
// or a check-out hour below the check-in hour, is pushed to the next day.
func (s *DayStatusService) windowViolations(log *models.ActionLog, shift *models.Shift) (lateMin, earlyMin int) {
	shiftStartH, shiftStartM, err := timeutil.ParseTime(shift.StartTime)
	if err != nil {
		return 0, 0
	}
	shiftEndH, shiftEndM, err := timeutil.ParseTime(shift.EndTime)
	if err != nil {
		return 0, 0
	}
	checkInH, checkInM, err := timeutil.ParseTime(log.CheckInTime)
	if err != nil {
		return 0, 0
	}
	checkOutH, checkOutM, err := timeutil.ParseTime(log.CheckOutTime)
	if err != nil {
		return 0, 0
	}

	shiftStart := timeutil.MinuteOfDay(shiftStartH, shiftStartM)
	shiftEnd := timeutil.MinuteOfDay(shiftEndH, shiftEndM)
	checkIn := timeutil.MinuteOfDay(checkInH, checkInM)
	checkOut := timeutil.MinuteOfDay(checkOutH, checkOutM)

	if checkIn > shiftStart+lateTolerance {
		lateMin = checkIn - shiftStart
	}

	if shiftEndH < shiftStartH {
		shiftEnd += timeutil.MinutesPerDay
	}
	if checkOutH < checkInH {
		checkOut += timeutil.MinutesPerDay
	}
	if checkOut < shiftEnd-lateTolerance {
		earlyMin = shiftEnd - checkOut
	}
	return lateMin, earlyMin
}

// SetManual records an explicit user override (leave/sick/holiday/absent)
// for the given date. The override is authoritative until a new check-in/out
// action is logged for that date.
func (s *DayStatusService) SetManual(date string, status models.DayStatus) (models.DayRecord, error) {
	if !status.IsManual() {
		return models.DayRecord{}, ErrInvalidDayStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadRecords()
	if err != nil {
		return models.DayRecord{}, err
	}

	now := s.clock.Now().Format(time.RFC3339)
	if existing := findRecord(records, date); existing != nil {
		existing.Status = status
		existing.Manual = true
		existing.UpdatedAt = now
		if err := saveJSON(s.store, KeyDailyStatus, records); err != nil {
			return models.DayRecord{}, err
		}
		return *existing, nil
	}

	record := models.DayRecord{
		Date:      date,
		Status:    status,
		Manual:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	records = append(records, record)
	if err := saveJSON(s.store, KeyDailyStatus, records); err != nil {
		return models.DayRecord{}, err
	}
	return record, nil
}

// noteAction clears the manual flag for a date after a new check-in/out is
// logged, letting automatic derivation take over again.
func (s *DayStatusService) noteAction(date string, action models.ActionType) error {
	if action != models.ActionCheckIn && action != models.ActionCheckOut {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadRecords()
	if err != nil {
		return err
	}
	existing := findRecord(records, date)
	if existing == nil || !existing.Manual {
		return nil
	}
	existing.Manual = false
	return saveJSON(s.store, KeyDailyStatus, records)
}

// Get returns the status view of one calendar date. A future date reads as
// not_set; a past or present date with neither record nor log reads as
// absent. For a date with a log but no persisted record the status is
// computed on the fly with the same rules the write path uses, so both paths
// agree. The read never writes.
func (s *DayStatusService) Get(date string) (models.DayRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(date)
}

func (s *DayStatusService) getLocked(date string) (models.DayRecord, error) {
	today := timeutil.FormatDate(s.clock.Now())
	if date > today {
		return models.DayRecord{Date: date, Status: models.DayStatusNotSet}, nil
	}

	records, err := s.loadRecords()
	if err != nil {
		return models.DayRecord{}, err
	}
	if existing := findRecord(records, date); existing != nil {
		return *existing, nil
	}

	log, err := s.logFor(date)
	if err != nil {
		return models.DayRecord{}, err
	}
	if log != nil {
		shift, err := s.shiftFor(log)
		if err != nil {
			return models.DayRecord{}, err
		}
		if shift != nil {
			return s.compute(log, shift), nil
		}
	}

	return models.DayRecord{Date: date, Status: models.DayStatusAbsent}, nil
}

// Week returns the seven day views of the Monday-started week containing the
// anchor instant.
func (s *DayStatusService) Week(anchor time.Time) ([]models.DayRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := timeutil.StartOfWeek(anchor)
	week := make([]models.DayRecord, 0, 7)
	for i := 0; i < 7; i++ {
		record, err := s.getLocked(timeutil.FormatDate(start.AddDate(0, 0, i)))
		if err != nil {
			return nil, err
		}
		week = append(week, record)
	}
	return week, nil
}

// RemoveDate deletes the persisted record for a date. Used by the daily
// reset; removing an absent record is a no-op.
func (s *DayStatusService) RemoveDate(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadRecords()
	if err != nil {
		return err
	}
	remaining := records[:0]
	for _, r := range records {
		if r.Date != date {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) == len(records) {
		return nil
	}
	return saveJSON(s.store, KeyDailyStatus, remaining)
}

// Records returns every persisted day record.
func (s *DayStatusService) Records() ([]models.DayRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadRecords()
}

func (s *DayStatusService) loadRecords() ([]models.DayRecord, error) {
	var records []models.DayRecord
	if _, err := loadJSON(s.store, KeyDailyStatus, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// logFor reads the action log entry for a date, nil when absent.
func (s *DayStatusService) logFor(date string) (*models.ActionLog, error) {
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

// shiftFor resolves the shift a log was recorded under: the snapshotted
// shift id when it still exists, otherwise the currently applied shift.
func (s *DayStatusService) shiftFor(log *models.ActionLog) (*models.Shift, error) {
	if log.ShiftID != "" {
		shift, err := s.shifts.Get(log.ShiftID)
		if err == nil {
			return &shift, nil
		}
		if err != ErrShiftNotFound {
			return nil, err
		}
	}
	return s.shifts.Active()
}

func findRecord(records []models.DayRecord, date string) *models.DayRecord {
	for i := range records {
		if records[i].Date == date {
			return &records[i]
		}
	}
	return nil
}
