package database

import (
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/readkeeper/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

type options struct {
	logger logger.Interface
}

type Option func(*options)

// WithLogger sets the GORM logger. The default is silent.
func WithLogger(l logger.Interface) Option {
	return func(o *options) {
		o.logger = l
	}
}

// NewDatabase opens the SQLite catalog at dbPath, creating the file and
// schema if absent. Foreign keys are enforced on every connection.
func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	o := options{logger: logger.Default.LogMode(logger.Silent)}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := gorm.Open(sqlite.Open(dsn(dbPath)), &gorm.Config{
		Logger: o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	slog.Debug("database ready", "path", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(dbPath string) string {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + "_foreign_keys=on"
}

func migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&entities.Book{}, "Genres", &entities.BookGenre{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&entities.Genre{}, "Books", &entities.BookGenre{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&entities.Author{},
		&entities.Genre{},
		&entities.Book{},
	)
}
