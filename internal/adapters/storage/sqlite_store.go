package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/appdeck/internal/config"
	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/ports"
)

// SQLiteStore implements ports.CollectionStore using GORM
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.CollectionStore = (*SQLiteStore)(nil)

// gormLogger wraps the appdeck logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("APPDECK_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteStore opens (and creates if needed) the SQLite database at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dbPath = config.ExpandPath(dbPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps a second appdeck process (CLI next to the TUI) from blocking reads
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&CollectionModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate collections schema: %w", err)
	}

	logging.Logger.Debug("SQLite store opened", "path", dbPath)
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStoreForHome opens the store inside an APPDECK_HOME directory
func NewSQLiteStoreForHome(homePath string) (*SQLiteStore, error) {
	return NewSQLiteStore(filepath.Join(homePath, config.DBFileName))
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements CollectionReader.Get
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, int, error) {
	if key == "" {
		return nil, 0, fmt.Errorf("%w: empty key", domain.ErrCollectionNotFound)
	}

	var model CollectionModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where(&CollectionModel{Key: key}).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fmt.Errorf("%w: %s", domain.ErrCollectionNotFound, key)
		}
		return nil, 0, fmt.Errorf("failed to read collection %s: %w", key, err)
	}

	return []byte(model.Value), model.SchemaVersion, nil
}

// Keys implements CollectionReader.Keys
func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := withRetry(func() error {
		keys = nil
		return s.db.WithContext(ctx).Model(&CollectionModel{}).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Pluck("key", &keys).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return keys, nil
}

// Put implements CollectionWriter.Put
func (s *SQLiteStore) Put(ctx context.Context, key string, data []byte, schemaVersion int) error {
	model := CollectionModel{
		Key:           key,
		SchemaVersion: schemaVersion,
		Value:         string(data),
	}

	return withRetry(func() error {
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "schema_version", "updated_at"}),
		}).Create(&model).Error
	}, 3)
}

// Delete implements CollectionWriter.Delete
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", domain.ErrCollectionNotFound)
	}

	return withRetry(func() error {
		result := s.db.WithContext(ctx).Where(&CollectionModel{Key: key}).Delete(&CollectionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrCollectionNotFound, key)
		}
		return nil
	}, 3)
}

func withRetry(fn func() error, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			lastErr = err
			if i < maxRetries-1 {
				time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			}
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, lastErr)
}
