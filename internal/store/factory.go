package store

import (
	"shift-track/internal/types"

	"github.com/sirupsen/logrus"
)

// NewStore creates a Store based on the application configuration.
// Preference order: Redis when REDIS_DSN is set, then the SQL database when
// DATABASE_DSN is set, otherwise the in-memory store.
func NewStore(configManager types.ConfigManager) (Store, error) {
	if dsn := configManager.GetRedisDSN(); dsn != "" {
		logrus.Info("Using Redis store")
		return NewRedisStore(dsn)
	}

	if dsn := configManager.GetDatabaseConfig().DSN; dsn != "" {
		logrus.Info("Using SQL store")
		return NewSQLStore(dsn, configManager.GetLogConfig().Level)
	}

	logrus.Info("Using memory store; data will not survive restarts")
	return NewMemoryStore(), nil
}
