// Package config implements environment-backed application configuration.
package config

import (
	"fmt"

	"shift-track/internal/types"
	"shift-track/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config aggregates every configuration section.
type Config struct {
	Server   types.ServerConfig
	Auth     types.AuthConfig
	CORS     types.CORSConfig
	Log      types.LogConfig
	Database types.DatabaseConfig
	RedisDSN string
}

// Manager implements types.ConfigManager over environment variables.
type Manager struct {
	config *Config
}

// NewManager creates a configuration manager, loading .env when present.
func NewManager() (types.ConfigManager, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	manager := &Manager{}
	if err := manager.ReloadConfig(); err != nil {
		return nil, err
	}
	if err := manager.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return manager, nil
}

// ReloadConfig re-reads all configuration from the environment.
func (m *Manager) ReloadConfig() error {
	config := &Config{
		Server: types.ServerConfig{
			Port:                    utils.ParseInteger(utils.GetEnvOrDefault("PORT", "3001"), 3001),
			Host:                    utils.GetEnvOrDefault("HOST", "0.0.0.0"),
			ReadTimeout:             utils.ParseInteger(utils.GetEnvOrDefault("SERVER_READ_TIMEOUT", "60"), 60),
			WriteTimeout:            utils.ParseInteger(utils.GetEnvOrDefault("SERVER_WRITE_TIMEOUT", "60"), 60),
			IdleTimeout:             utils.ParseInteger(utils.GetEnvOrDefault("SERVER_IDLE_TIMEOUT", "120"), 120),
			GracefulShutdownTimeout: utils.ParseInteger(utils.GetEnvOrDefault("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT", "10"), 10),
		},
		Auth: types.AuthConfig{
			Key: utils.GetEnvOrDefault("AUTH_KEY", ""),
		},
		CORS: types.CORSConfig{
			Enabled:          utils.ParseBoolean(utils.GetEnvOrDefault("ENABLE_CORS", "true"), true),
			AllowedOrigins:   utils.ParseArray(utils.GetEnvOrDefault("ALLOWED_ORIGINS", "*"), []string{"*"}),
			AllowedMethods:   utils.ParseArray(utils.GetEnvOrDefault("ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"), []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   utils.ParseArray(utils.GetEnvOrDefault("ALLOWED_HEADERS", "*"), []string{"*"}),
			AllowCredentials: utils.ParseBoolean(utils.GetEnvOrDefault("ALLOW_CREDENTIALS", "false"), false),
		},
		Log: types.LogConfig{
			Level:      utils.GetEnvOrDefault("LOG_LEVEL", "info"),
			Format:     utils.GetEnvOrDefault("LOG_FORMAT", "text"),
			EnableFile: utils.ParseBoolean(utils.GetEnvOrDefault("LOG_ENABLE_FILE", "false"), false),
			FilePath:   utils.GetEnvOrDefault("LOG_FILE_PATH", "./data/logs/app.log"),
		},
		Database: types.DatabaseConfig{
			DSN: utils.GetEnvOrDefault("DATABASE_DSN", ""),
		},
		RedisDSN: utils.GetEnvOrDefault("REDIS_DSN", ""),
	}

	m.config = config
	return nil
}

// Validate checks the loaded configuration.
func (m *Manager) Validate() error {
	if m.config.Server.Port < 1 || m.config.Server.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %d", m.config.Server.Port)
	}
	if m.config.Auth.Key == "" {
		return fmt.Errorf("AUTH_KEY is required")
	}
	return nil
}

// GetAuthConfig returns authentication configuration.
func (m *Manager) GetAuthConfig() types.AuthConfig {
	return m.config.Auth
}

// GetCORSConfig returns CORS configuration.
func (m *Manager) GetCORSConfig() types.CORSConfig {
	return m.config.CORS
}

// GetLogConfig returns logging configuration.
func (m *Manager) GetLogConfig() types.LogConfig {
	return m.config.Log
}

// GetDatabaseConfig returns database configuration.
func (m *Manager) GetDatabaseConfig() types.DatabaseConfig {
	return m.config.Database
}

// GetRedisDSN returns the Redis connection string, empty when unset.
func (m *Manager) GetRedisDSN() string {
	return m.config.RedisDSN
}

// GetEffectiveServerConfig returns the server configuration.
func (m *Manager) GetEffectiveServerConfig() types.ServerConfig {
	return m.config.Server
}

// DisplayServerConfig logs a startup summary of the effective configuration.
func (m *Manager) DisplayServerConfig() {
	server := m.config.Server

	storage := "memory"
	if m.config.RedisDSN != "" {
		storage = "redis"
	} else if m.config.Database.DSN != "" {
		storage = "database"
	}

	logrus.Info("")
	logrus.Info("======= Server Configuration =======")
	logrus.Infof("  Listen address: %s:%d", server.Host, server.Port)
	logrus.Infof("  Storage backend: %s", storage)
	logrus.Infof("  CORS enabled: %v", m.config.CORS.Enabled)
	logrus.Infof("  Log level: %s", m.config.Log.Level)
	logrus.Infof("  Graceful shutdown timeout: %ds", server.GracefulShutdownTimeout)
	logrus.Info("====================================")
	logrus.Info("")
}
