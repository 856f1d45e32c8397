package services

import (
	"fmt"
	"sync"

	"shift-track/internal/models"
	"shift-track/internal/store"
	"shift-track/internal/timeutil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ShiftService manages the registry of shift definitions and the single
// active-shift pointer. At most one shift is applied at any time; the active
// pointer is the persisted active-shift-id key, never an in-memory copy, so
// an update to the applied shift is immediately visible to readers.
type ShiftService struct {
	store store.Store
	mu    sync.Mutex
}

// NewShiftService constructs a ShiftService.
func NewShiftService(s store.Store) *ShiftService {
	return &ShiftService{store: s}
}

// ShiftParams captures the mutable fields of a shift definition.
type ShiftParams struct {
	Name           string `json:"name" binding:"required"`
	DepartureTime  string `json:"departureTime" binding:"required"`
	StartTime      string `json:"startTime" binding:"required"`
	OfficeEndTime  string `json:"officeEndTime" binding:"required"`
	EndTime        string `json:"endTime" binding:"required"`
	ReminderBefore int    `json:"reminderBefore"`
	ReminderAfter  int    `json:"reminderAfter"`
	AppliedDays    []int  `json:"appliedDays" binding:"required"`
	IsApplied      bool   `json:"isApplied"`
}

// validate rejects malformed wall-clock times and weekday numbers at the
// boundary; stored shifts are always well-formed.
func (p *ShiftParams) validate() error {
	for _, t := range []string{p.DepartureTime, p.StartTime, p.OfficeEndTime, p.EndTime} {
		if _, _, err := timeutil.ParseTime(t); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidShift, err)
		}
	}
	for _, d := range p.AppliedDays {
		if d < 1 || d > 7 {
			return fmt.Errorf("%w: weekday %d not in 1 (Monday) to 7 (Sunday)", ErrInvalidShift, d)
		}
	}
	return nil
}

// List returns all shift definitions.
func (s *ShiftService) List() ([]models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadShifts()
}

// Get returns the shift with the given id.
func (s *ShiftService) Get(id string) (models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shifts, err := s.loadShifts()
	if err != nil {
		return models.Shift{}, err
	}
	for _, shift := range shifts {
		if shift.ID == id {
			return shift, nil
		}
	}
	return models.Shift{}, ErrShiftNotFound
}

// Add creates a new shift. The new shift is not applied unless requested;
// when it is, every other shift has its applied flag cleared in the same
// write.
func (s *ShiftService) Add(params ShiftParams) (models.Shift, error) {
	if err := params.validate(); err != nil {
		return models.Shift{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shifts, err := s.loadShifts()
	if err != nil {
		return models.Shift{}, err
	}

	shift := models.Shift{
		ID:             uuid.NewString(),
		Name:           params.Name,
		DepartureTime:  params.DepartureTime,
		StartTime:      params.StartTime,
		OfficeEndTime:  params.OfficeEndTime,
		EndTime:        params.EndTime,
		ReminderBefore: params.ReminderBefore,
		ReminderAfter:  params.ReminderAfter,
		AppliedDays:    params.AppliedDays,
		IsApplied:      params.IsApplied,
	}

	if shift.IsApplied {
		for i := range shifts {
			shifts[i].IsApplied = false
		}
	}
	shifts = append(shifts, shift)

	if err := saveJSON(s.store, KeyShifts, shifts); err != nil {
		return models.Shift{}, err
	}
	if shift.IsApplied {
		if err := s.store.Set(KeyActiveShiftID, []byte(shift.ID), 0); err != nil {
			return models.Shift{}, err
		}
	}

	logrus.WithFields(logrus.Fields{"shift_id": shift.ID, "name": shift.Name}).Info("Shift created")
	return shift, nil
}

// Update merges the given params into the shift with the given id. Because
// the active pointer is stored by id, an update to the applied shift needs no
// extra bookkeeping.
func (s *ShiftService) Update(id string, params ShiftParams) (models.Shift, error) {
	if err := params.validate(); err != nil {
		return models.Shift{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shifts, err := s.loadShifts()
	if err != nil {
		return models.Shift{}, err
	}

	for i := range shifts {
		if shifts[i].ID != id {
			continue
		}
		shifts[i].Name = params.Name
		shifts[i].DepartureTime = params.DepartureTime
		shifts[i].StartTime = params.StartTime
		shifts[i].OfficeEndTime = params.OfficeEndTime
		shifts[i].EndTime = params.EndTime
		shifts[i].ReminderBefore = params.ReminderBefore
		shifts[i].ReminderAfter = params.ReminderAfter
		shifts[i].AppliedDays = params.AppliedDays

		if err := saveJSON(s.store, KeyShifts, shifts); err != nil {
			return models.Shift{}, err
		}
		return shifts[i], nil
	}
	return models.Shift{}, ErrShiftNotFound
}

// Delete removes a shift. When the deleted shift was active, the active
// pointer is cleared; no other shift is promoted.
func (s *ShiftService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shifts, err := s.loadShifts()
	if err != nil {
		return err
	}

	remaining := make([]models.Shift, 0, len(shifts))
	var deleted *models.Shift
	for i := range shifts {
		if shifts[i].ID == id {
			deleted = &shifts[i]
			continue
		}
		remaining = append(remaining, shifts[i])
	}
	if deleted == nil {
		return ErrShiftNotFound
	}

	if err := saveJSON(s.store, KeyShifts, remaining); err != nil {
		return err
	}
	if deleted.IsApplied {
		if err := s.store.Delete(KeyActiveShiftID); err != nil {
			return err
		}
	}

	logrus.WithField("shift_id", id).Info("Shift deleted")
	return nil
}

// Apply marks the target shift as applied and clears the flag on every other
// shift in one read-modify-write cycle.
func (s *ShiftService) Apply(id string) (models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shifts, err := s.loadShifts()
	if err != nil {
		return models.Shift{}, err
	}

	var applied *models.Shift
	for i := range shifts {
		if shifts[i].ID == id {
			shifts[i].IsApplied = true
			applied = &shifts[i]
		} else {
			shifts[i].IsApplied = false
		}
	}
	if applied == nil {
		return models.Shift{}, ErrShiftNotFound
	}

	if err := saveJSON(s.store, KeyShifts, shifts); err != nil {
		return models.Shift{}, err
	}
	if err := s.store.Set(KeyActiveShiftID, []byte(id), 0); err != nil {
		return models.Shift{}, err
	}

	logrus.WithFields(logrus.Fields{"shift_id": id, "name": applied.Name}).Info("Shift applied")
	return *applied, nil
}

// Active returns the currently applied shift, or nil when none is applied.
func (s *ShiftService) Active() (*models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked()
}

func (s *ShiftService) activeLocked() (*models.Shift, error) {
	id, err := s.store.Get(KeyActiveShiftID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	shifts, err := s.loadShifts()
	if err != nil {
		return nil, err
	}
	for i := range shifts {
		if shifts[i].ID == string(id) {
			return &shifts[i], nil
		}
	}
	return nil, nil
}

// EnsureDefaults seeds the registry with the three default shifts when it is
// empty, applying the first one. A non-empty registry short-circuits, so the
// seeding runs at most once across restarts.
func (s *ShiftService) EnsureDefaults() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shifts, err := s.loadShifts()
	if err != nil {
		return err
	}
	if len(shifts) > 0 {
		return nil
	}

	defaults := []models.Shift{
		{
			ID:             uuid.NewString(),
			Name:           "Administrative",
			DepartureTime:  "07:30",
			StartTime:      "08:00",
			OfficeEndTime:  "17:00",
			EndTime:        "17:30",
			ReminderBefore: 15,
			ReminderAfter:  15,
			AppliedDays:    []int{1, 2, 3, 4, 5},
			IsApplied:      true,
		},
		{
			ID:             uuid.NewString(),
			Name:           "Morning",
			DepartureTime:  "05:30",
			StartTime:      "06:00",
			OfficeEndTime:  "14:00",
			EndTime:        "14:30",
			ReminderBefore: 15,
			ReminderAfter:  15,
			AppliedDays:    []int{1, 2, 3, 4, 5, 6},
		},
		{
			ID:             uuid.NewString(),
			Name:           "Afternoon",
			DepartureTime:  "13:30",
			StartTime:      "14:00",
			OfficeEndTime:  "22:00",
			EndTime:        "22:30",
			ReminderBefore: 15,
			ReminderAfter:  15,
			AppliedDays:    []int{1, 2, 3, 4, 5, 6},
		},
	}

	if err := saveJSON(s.store, KeyShifts, defaults); err != nil {
		return err
	}
	if err := s.store.Set(KeyActiveShiftID, []byte(defaults[0].ID), 0); err != nil {
		return err
	}

	logrus.Infof("Seeded %d default shifts", len(defaults))
	return nil
}

func (s *ShiftService) loadShifts() ([]models.Shift, error) {
	var shifts []models.Shift
	if _, err := loadJSON(s.store, KeyShifts, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}
