// Package db provides database connection and management utilities.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/Naklen/erc-test/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	// Import postgres driver for registration with database/sql)
	_ "github.com/lib/pq"
)

//go:embed migrations/*.up.sql
var migrations embed.FS

// DB wraps the database connection pool together with the ORM session
// built on top of it. Both share the same underlying connections.
type DB struct {
	*sql.DB
	ORM    *gorm.DB
	logger *slog.Logger
}

// Connect establishes a connection to the database
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	logger.Info("connecting to database",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
		"url_configured", cfg.URL != "",
	)

	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Error("failed to open database connection", "error", err)
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	orm, err := openORM(sqlDB, NewGormLogger(logger, cfg.SlowQueryThreshold))
	if err != nil {
		logger.Error("failed to initialise orm", "error", err)
		_ = sqlDB.Close()
		return nil, err
	}

	logger.Info("successfully connected to database",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_lifetime", cfg.ConnMaxLifetime,
	)

	return &DB{
		DB:     sqlDB,
		ORM:    orm,
		logger: logger,
	}, nil
}

func openORM(sqlDB *sql.DB, gormLogger *GormLogger) (*gorm.DB, error) {
	orm, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open orm session: %w", err)
	}
	return orm, nil
}

// EnsureSchema applies the embedded schema files in name order. Every
// statement is idempotent, so this is safe to run on each start.
func (db *DB) EnsureSchema(ctx context.Context) error {
	files, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("failed to list schema files: %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		script, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read schema file %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("failed to apply schema file %s: %w", name, err)
		}
		db.logger.Debug("applied schema file", "file", name)
	}

	db.logger.Info("database schema ensured", "files", len(files))
	return nil
}

// Close closes the database connection and logs the closure.
func (db *DB) Close() error {
	db.logger.Info("closing database connection")
	return db.DB.Close()
}
