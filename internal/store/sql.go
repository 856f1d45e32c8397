package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// kvEntry is the single-table schema backing the SQL store. Values are the
// same opaque JSON blobs the other backends hold.
type kvEntry struct {
	Key       string    `gorm:"primaryKey;size:191;column:key"`
	Value     []byte    `gorm:"column:value"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName pins the table name independent of gorm pluralization.
func (kvEntry) TableName() string {
	return "kv_entries"
}

// SQLStore persists key-value pairs in a relational database via gorm.
// SQLite (default), MySQL and PostgreSQL are supported; the driver is
// detected from the DSN.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore opens the database for the given DSN and migrates the
// key-value table.
func NewSQLStore(dsn string, logLevel string) (*SQLStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is not configured")
	}

	var gormLogger logger.Interface
	if logLevel == "debug" {
		// Route GORM logs through logrus output so console and file stay in sync.
		gormLogger = logger.New(
			log.New(logrus.StandardLogger().Out, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: true,
			},
		)
	}

	dialector, isSQLite, err := detectDialector(dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if isSQLite {
		// SQLite needs limited connections to avoid locking issues.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("key-value table migration failed: %w", err)
	}

	return &SQLStore{db: db}, nil
}

// detectDialector picks the gorm dialector from the DSN shape.
func detectDialector(dsn string) (gorm.Dialector, bool, error) {
	isPostgres := strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		(strings.Contains(dsn, "host=") && strings.Contains(dsn, "dbname="))
	isMySQL := strings.Contains(dsn, "@tcp(") || strings.Contains(dsn, "@unix(")

	switch {
	case isPostgres:
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), false, nil
	case isMySQL:
		if !strings.Contains(dsn, "parseTime") {
			if strings.Contains(dsn, "?") {
				dsn += "&parseTime=true"
			} else {
				dsn += "?parseTime=true"
			}
		}
		return mysql.Open(dsn), false, nil
	default:
		// Plain filesystem path or file: URI -> SQLite. Create the parent
		// directory only for plain paths; the driver handles URI parsing.
		if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, false, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		params := "_pragma=foreign_keys(1)&_busy_timeout=10000&_journal_mode=WAL&_synchronous=NORMAL"
		delimiter := "?"
		if strings.Contains(dsn, "?") {
			delimiter = "&"
		}
		return sqlite.Open(dsn + delimiter + params), true, nil
	}
}

// Close closes the underlying connection pool.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Set stores a key-value pair.
func (s *SQLStore) Set(key string, value []byte, ttl time.Duration) error {
	entry := kvEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}
	return s.db.Save(&entry).Error
}

// Get retrieves a value by its key.
func (s *SQLStore) Get(key string) ([]byte, error) {
	var entry kvEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		s.db.Delete(&kvEntry{}, "key = ?", key)
		return nil, ErrNotFound
	}
	return entry.Value, nil
}

// Delete removes a value by its key.
func (s *SQLStore) Delete(key string) error {
	return s.db.Delete(&kvEntry{}, "key = ?", key).Error
}

// Del removes multiple values by their keys.
func (s *SQLStore) Del(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.Delete(&kvEntry{}, "key IN ?", keys).Error
}

// Exists checks if a key exists.
func (s *SQLStore) Exists(key string) (bool, error) {
	var count int64
	err := s.db.Model(&kvEntry{}).Where("key = ?", key).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Clear removes all data.
func (s *SQLStore) Clear() error {
	return s.db.Where("1 = 1").Delete(&kvEntry{}).Error
}
