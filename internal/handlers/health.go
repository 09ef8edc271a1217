package handlers

import (
	"context"
	"time"

	"github.com/Naklen/erc-test/internal/api"
)

// pingTimeout bounds the database round trip so a stuck pool reports
// unhealthy instead of hanging the probe.
const pingTimeout = 2 * time.Second

// GetHealth handles GET /health. It reports unhealthy with 503 when the
// database does not answer a ping.
func (h *Handler) GetHealth(ctx context.Context, _ api.GetHealthRequestObject) (api.GetHealthResponseObject, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.healthChecker.PingContext(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "database ping failed",
			"error", err,
			"elapsed", time.Since(start),
		)
		return api.GetHealth503JSONResponse{Status: api.Unhealthy}, nil
	}

	return api.GetHealth200JSONResponse{Status: api.Healthy}, nil
}
