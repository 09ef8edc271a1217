// Package handlers implements HTTP handlers for the account API.
package handlers

import (
	"log/slog"

	"github.com/Naklen/erc-test/internal/api"
	"github.com/Naklen/erc-test/internal/service"
)

// Handler implements the api.StrictServerInterface for all endpoints
type Handler struct {
	accounts      service.AccountManager
	residents     service.ResidentManager
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

var _ api.StrictServerInterface = (*Handler)(nil)

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	accounts service.AccountManager,
	residents service.ResidentManager,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		accounts:      accounts,
		residents:     residents,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
