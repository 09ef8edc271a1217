//go:build integration

// Package containers starts throwaway infrastructure for integration tests.
package containers

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Naklen/erc-test/internal/config"
	"github.com/Naklen/erc-test/internal/db"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance with the
// application schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	Config    config.DatabaseConfig
	DB        *db.DB
}

var (
	sharedOnce sync.Once
	shared     *PostgresContainer
	sharedErr  error
)

// GetPostgres returns a process-wide PostgreSQL container, starting it on
// first use. The container is reaped by Ryuk when the test binary exits.
func GetPostgres(t *testing.T) *PostgresContainer {
	t.Helper()

	sharedOnce.Do(func() {
		shared, sharedErr = startPostgres(context.Background())
	})
	if sharedErr != nil {
		t.Fatalf("failed to start postgres container: %v", sharedErr)
	}

	return shared
}

func startPostgres(ctx context.Context) (*PostgresContainer, error) {
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("accounts"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	cfg := config.DatabaseConfig{
		URL:             dsn,
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	database, err := db.Connect(ctx, &cfg, logger)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := database.EnsureSchema(ctx); err != nil {
		_ = database.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &PostgresContainer{
		Container: container,
		Config:    cfg,
		DB:        database,
	}, nil
}

// Reset empties all tables between tests.
func (p *PostgresContainer) Reset(t *testing.T) {
	t.Helper()

	if err := p.DB.TruncateAll(context.Background()); err != nil {
		t.Fatalf("failed to reset database: %v", err)
	}
}
