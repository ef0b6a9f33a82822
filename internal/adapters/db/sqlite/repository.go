package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// Open opens the database file at path, creating its parent directory when
// needed. Foreign keys are enforced on every connection.
func Open(path string) (*gorm.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	return gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        cleanPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
	}, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
}

// withDB runs fn against a handle that is opened for this call only and
// closed before returning.
func withDB(ctx context.Context, path string, fn func(db *gorm.DB) error) error {
	db, err := Open(path)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("close sqlite db")
		}
	}()

	log.Debug().Str("path", path).Msg("sqlite session")
	return fn(db.WithContext(ctx))
}
