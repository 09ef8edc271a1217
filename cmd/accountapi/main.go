package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Naklen/erc-test/internal/config"
	"github.com/Naklen/erc-test/internal/db"
	"github.com/Naklen/erc-test/internal/handlers"
	"github.com/Naklen/erc-test/internal/metrics"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting account api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"auto_schema", cfg.Database.AutoSchema,
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("account api stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Database.AutoSchema {
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handlers.NewRouter(database, cfg, metrics.New(), logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	return nil
}
