// Package app provides the main application logic and lifecycle management.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"shift-track/internal/services"
	"shift-track/internal/store"
	"shift-track/internal/types"
	"shift-track/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/dig"
)

// App holds all services and manages the application lifecycle.
type App struct {
	engine        *gin.Engine
	configManager types.ConfigManager
	shiftService  *services.ShiftService
	storage       store.Store
	httpServer    *http.Server
}

// AppParams defines the dependencies for the App.
type AppParams struct {
	dig.In
	Engine        *gin.Engine
	ConfigManager types.ConfigManager
	ShiftService  *services.ShiftService
	Storage       store.Store
}

// NewApp is the constructor for App, with dependencies injected by dig.
func NewApp(params AppParams) *App {
	return &App{
		engine:        params.Engine,
		configManager: params.ConfigManager,
		shiftService:  params.ShiftService,
		storage:       params.Storage,
	}
}

// Start runs the application, it is a non-blocking call.
func (a *App) Start() error {
	// Verify the storage backend before accepting traffic.
	if _, err := a.storage.Exists("shifts"); err != nil {
		return fmt.Errorf("storage check failed: %w", err)
	}

	// Seed the default shift catalog on first run.
	if err := a.shiftService.EnsureDefaults(); err != nil {
		return fmt.Errorf("failed to seed default shifts: %w", err)
	}

	a.configManager.DisplayServerConfig()

	serverConfig := a.configManager.GetEffectiveServerConfig()
	a.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port),
		Handler:        a.engine,
		ReadTimeout:    time.Duration(serverConfig.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(serverConfig.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(serverConfig.IdleTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logrus.Infof("Shift-Track server started successfully on Version: %s", version.Version)
		logrus.Infof("Server address: http://%s:%d", serverConfig.Host, serverConfig.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server startup failed: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the application.
func (a *App) Stop(ctx context.Context) {
	logrus.Info("Shutting down server...")

	if a.httpServer != nil {
		shutdownStart := time.Now()
		if err := a.httpServer.Shutdown(ctx); err != nil {
			logrus.Debug("HTTP server graceful shutdown timed out, forcing remaining connections to close.")
			if closeErr := a.httpServer.Close(); closeErr != nil {
				logrus.Errorf("Error forcing HTTP server to close: %v", closeErr)
			}
		}
		logrus.Infof("HTTP server has been shut down. (took %v)", time.Since(shutdownStart))
	}

	if err := a.storage.Close(); err != nil {
		logrus.Errorf("Error closing storage: %v", err)
	}

	logrus.Info("Application has stopped.")
}
