// Package handler exposes the attendance domain over HTTP.
package handler

import (
	"errors"

	app_errors "shift-track/internal/errors"
	"shift-track/internal/services"
	"shift-track/internal/store"

	"go.uber.org/dig"
)

// Server aggregates the HTTP handlers and their service dependencies.
type Server struct {
	Store           store.Store
	ShiftService    *services.ShiftService
	WorkLogService  *services.WorkLogService
	DayStatusSvc    *services.DayStatusService
	StatsService    *services.StatsService
	SettingsService *services.SettingsService
	ReminderService *services.ReminderService
}

// ServerParams defines the dependencies for the Server.
type ServerParams struct {
	dig.In
	Store           store.Store
	ShiftService    *services.ShiftService
	WorkLogService  *services.WorkLogService
	DayStatusSvc    *services.DayStatusService
	StatsService    *services.StatsService
	SettingsService *services.SettingsService
	ReminderService *services.ReminderService
}

// NewServer creates a new Server instance with dependencies injected by dig.
func NewServer(params ServerParams) *Server {
	return &Server{
		Store:           params.Store,
		ShiftService:    params.ShiftService,
		WorkLogService:  params.WorkLogService,
		DayStatusSvc:    params.DayStatusSvc,
		StatsService:    params.StatsService,
		SettingsService: params.SettingsService,
		ReminderService: params.ReminderService,
	}
}

// mapServiceError translates a service error into the API error taxonomy.
func mapServiceError(err error) *app_errors.APIError {
	switch {
	case errors.Is(err, services.ErrShiftNotFound):
		return app_errors.NewNotFoundError(err.Error())
	case errors.Is(err, services.ErrInvalidShift),
		errors.Is(err, services.ErrInvalidAction),
		errors.Is(err, services.ErrInvalidDayStatus):
		return app_errors.NewValidationError(err.Error())
	default:
		return app_errors.NewStorageError(err.Error())
	}
}
