// Package container wires the application dependencies together.
package container

import (
	"shift-track/internal/app"
	"shift-track/internal/clock"
	"shift-track/internal/config"
	"shift-track/internal/handler"
	"shift-track/internal/router"
	"shift-track/internal/services"
	"shift-track/internal/store"

	"go.uber.org/dig"
)

// BuildContainer creates and configures the dependency injection container.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		config.NewManager,
		store.NewStore,
		func() clock.Clock { return clock.NewSystem() },

		services.NewShiftService,
		services.NewSettingsService,
		services.NewDayStatusService,
		services.NewWorkLogService,
		services.NewStatsService,
		services.NewReminderService,

		handler.NewServer,
		router.NewRouter,
		app.NewApp,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}
