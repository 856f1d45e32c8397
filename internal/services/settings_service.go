package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"shift-track/internal/models"
	"shift-track/internal/store"
)

// SettingsService manages the user-level application settings. The work-log
// service consults SimpleButtonMode on every go_work action.
type SettingsService struct {
	store store.Store
	mu    sync.Mutex
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(s store.Store) *SettingsService {
	return &SettingsService{store: s}
}

// Get returns the persisted settings, falling back to defaults when the key
// is absent.
func (s *SettingsService) Get() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked()
}

func (s *SettingsService) getLocked() (models.Settings, error) {
	settings := models.DefaultSettings()
	if _, err := loadJSON(s.store, KeySettings, &settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// Update merges a partial JSON patch into the current settings and persists
// the result. Unknown fields are ignored; absent fields keep their value.
func (s *SettingsService) Update(patch json.RawMessage) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.getLocked()
	if err != nil {
		return models.Settings{}, err
	}
	if err := json.Unmarshal(patch, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("invalid settings patch: %w", err)
	}
	if err := saveJSON(s.store, KeySettings, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
