// Package db opens and manages the relational store behind the repositories.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/friendsofmine/backend/config"
)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 2 * time.Second
)

// Database owns a GORM handle and the pool it was configured with.
type Database struct {
	db  *gorm.DB
	cfg *config.DatabaseConfig
}

// NewConnection opens the store named by cfg.Driver.
func NewConnection(cfg *config.DatabaseConfig, environment string) (*Database, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewPostgresConnection(cfg, environment)
	case config.DriverSQLite:
		return NewSQLiteConnection(cfg, environment)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func open(dialector gorm.Dialector, cfg *config.DatabaseConfig, environment string) (*Database, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger(environment)})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := Ping(ctx, gormDB); err != nil {
		return nil, err
	}

	slog.Info("Database connection established",
		"driver", cfg.Driver,
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return &Database{db: gormDB, cfg: cfg}, nil
}

// gormLogger only lets GORM warnings through in development.
func gormLogger(environment string) logger.Interface {
	if environment == "development" {
		return logger.Default.LogMode(logger.Warn)
	}
	return logger.Default.LogMode(logger.Silent)
}

// Ping checks that gormDB can reach its store.
func Ping(ctx context.Context, gormDB *gorm.DB) error {
	if gormDB == nil {
		return errors.New("database is not configured")
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// HealthChecker returns a check function for the /health endpoint.
func HealthChecker(gormDB *gorm.DB) func() bool {
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		if err := Ping(ctx, gormDB); err != nil {
			slog.Error("Database health check failed", "error", err)
			return false
		}
		return true
	}
}

// DB returns the GORM handle.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Close releases the pool.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	slog.Info("Database connection closed", "driver", d.cfg.Driver)
	return nil
}

// AutoMigrate creates or alters the tables of models.
func (d *Database) AutoMigrate(models ...any) error {
	if err := d.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}
