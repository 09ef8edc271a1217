// Package middleware provides HTTP middleware components for the account API.
package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Naklen/erc-test/internal/models"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"
	maxIdempotentBody    = 1 << 20
)

// idempotentPaths lists the create endpoints. Retrying a create with the same
// key replays the first response instead of tripping the uniqueness rules.
var idempotentPaths = []string{
	"/accounts",
	"/residents",
}

// IdempotencyRepository defines the interface for idempotency storage
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
}

// ReplayCounter is told about every replayed response.
type ReplayCounter interface {
	RecordReplay()
}

// Idempotency creates middleware that handles idempotent request caching.
// replays may be nil.
func Idempotency(repo IdempotencyRepository, replays ReplayCounter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresIdempotency(r) {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := r.Header.Get(idempotencyKeyHeader)
			if idempotencyKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxIdempotentBody+1))
			if err != nil {
				writeError(w, http.StatusBadRequest, "bad_request", "failed to read request body")
				return
			}
			if len(body) > maxIdempotentBody {
				writeError(w, http.StatusRequestEntityTooLarge, "bad_request", "request body too large")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			requestPath := normalizeRequestPath(r.URL.Path)
			requestHash := fingerprint(body)
			ctx := r.Context()

			cached, err := repo.Get(ctx, idempotencyKey, requestPath)
			if err != nil {
				logger.ErrorContext(ctx, "failed to check idempotency cache", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if cached != nil {
				if cached.RequestHash != requestHash {
					logger.WarnContext(ctx, "idempotency key reused with a different body",
						"key", idempotencyKey,
						"path", requestPath,
					)
					writeError(w, http.StatusUnprocessableEntity, "idempotency_key_reused",
						"Idempotency-Key was already used with a different request body")
					return
				}

				logger.DebugContext(ctx, "returning cached idempotent response",
					"key", idempotencyKey,
					"path", requestPath,
					"status", cached.ResponseStatus,
				)
				if replays != nil {
					replays.RecordReplay()
				}
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set(replayedHeader, "true")
				if cached.ResponseLocation != "" {
					w.Header().Set("Location", cached.ResponseLocation)
				}
				w.WriteHeader(cached.ResponseStatus)
				//nolint:errcheck // Best effort response writing
				w.Write([]byte(cached.ResponseBody))
				return
			}

			capture := newResponseCapture(w, true)
			next.ServeHTTP(capture, r)

			if !shouldCacheResponse(capture.statusCode) {
				return
			}

			idemKey := &models.IdempotencyKey{
				Key:              idempotencyKey,
				RequestPath:      requestPath,
				RequestHash:      requestHash,
				ResponseStatus:   capture.statusCode,
				ResponseBody:     capture.body.String(),
				ResponseLocation: capture.Header().Get("Location"),
				CreatedAt:        time.Now(),
			}

			if err := repo.Store(ctx, idemKey); err != nil {
				logger.ErrorContext(ctx, "failed to store idempotency key",
					"error", err,
					"key", idempotencyKey,
				)
			}
		})
	}
}

func requiresIdempotency(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}

	path := normalizeRequestPath(r.URL.Path)
	for _, p := range idempotentPaths {
		if path == p {
			return true
		}
	}
	return false
}

func normalizeRequestPath(urlPath string) string {
	return strings.TrimSuffix(urlPath, "/")
}

func shouldCacheResponse(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

func fingerprint(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
