package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Naklen/erc-test/internal/api"
	"github.com/Naklen/erc-test/internal/config"
	"github.com/Naklen/erc-test/internal/db"
	"github.com/Naklen/erc-test/internal/metrics"
	"github.com/Naklen/erc-test/internal/middleware"
	"github.com/Naklen/erc-test/internal/repository"
	"github.com/Naklen/erc-test/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) http.Handler {
	accountRepo := repository.NewAccountRepository(database.ORM)
	residentRepo := repository.NewResidentRepository(database.ORM)
	idempotencyRepo := repository.NewIdempotencyRepository(database.ORM, cfg.App.IdempotencyTTL)

	accountService := service.NewAccountService(accountRepo, m, logger)
	residentService := service.NewResidentService(residentRepo, m, logger)

	handler := NewHandler(accountService, residentService, database, logger)

	return newHTTPHandler(handler, idempotencyRepo, m, logger)
}

// newHTTPHandler mounts the API, docs and metrics routes and wraps them in
// the middleware chain. Request ID runs first so every later layer can log it.
func newHTTPHandler(
	handler *Handler,
	idempotencyRepo middleware.IdempotencyRepository,
	m *metrics.Metrics,
	logger *slog.Logger,
) http.Handler {
	strictHandler := api.NewStrictHandlerWithOptions(handler, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestErrorHandler(logger),
		ResponseErrorHandlerFunc: responseErrorHandler(logger),
	})

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	mux.Handle("GET /metrics", m.Handler())
	api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: requestErrorHandler(logger),
	})

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.RequestLogger(logger),
		middleware.Metrics(m),
		middleware.Idempotency(idempotencyRepo, m, logger),
	)
}
