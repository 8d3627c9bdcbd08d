package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nurgissab/cram/internal/models"
)

// Store provides owner-scoped read/write access to the planner records.
// Every query takes the owner ID explicitly; there is no ambient owner.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path and runs migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := gdb.AutoMigrate(
		&models.Owner{},
		&models.Subject{},
		&models.Topic{},
		&models.Task{},
		&models.Session{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: gdb}, nil
}

// OpenDefault opens the database at $CRAM_DB, falling back to
// ~/.cram/cram.db.
func OpenDefault() (*Store, error) {
	path := os.Getenv("CRAM_DB")
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(homeDir, ".cram", "cram.db")
	}
	return Open(path)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
