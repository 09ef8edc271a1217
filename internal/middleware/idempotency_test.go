package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Naklen/erc-test/internal/models"
	"github.com/Naklen/erc-test/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const accountBody = `{"account_number":"100-200","address":"Lenina 1","open_date":"2020-01-10T00:00:00Z","space_area":40}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body)) //nolint:errcheck // test helper
	})
}

func postRequest(path, key, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if key != "" {
		req.Header.Set(idempotencyKeyHeader, key)
	}
	return req
}

type replayCount int

func (c *replayCount) RecordReplay() { *c++ }

func TestIdempotency_Bypassed(t *testing.T) {
	tests := []struct {
		req  *http.Request
		name string
	}{
		{
			name: "GET request",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
				req.Header.Set(idempotencyKeyHeader, "test-key")
				return req
			}(),
		},
		{name: "update path", req: postRequest("/accounts/add-residents", "test-key", "")},
		{name: "missing key", req: postRequest("/accounts", "", accountBody)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockIdempotencyRepository(t)
			middleware := Idempotency(repo, nil, testLogger())

			handlerCalled := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			middleware(handler).ServeHTTP(httptest.NewRecorder(), tt.req)

			assert.True(t, handlerCalled)
			repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
		})
	}
}

func TestIdempotency_FirstRequestCached(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "unique-key-123", "/accounts").Return(nil, nil)

	var stored *models.IdempotencyKey
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.IdempotencyKey)
		}).
		Return(nil)

	middleware := Idempotency(repo, nil, testLogger())

	var seenBody string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body) //nolint:errcheck // test helper
		seenBody = string(b)
		w.Header().Set("Location", "/accounts/1")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`)) //nolint:errcheck // test helper
	})

	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, postRequest("/accounts/", "unique-key-123", accountBody))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"id":1}`, rec.Body.String())
	assert.Equal(t, accountBody, seenBody, "handler must still see the request body")
	assert.Empty(t, rec.Header().Get(replayedHeader), "first request should not have replay header")

	require.NotNil(t, stored)
	assert.Equal(t, "/accounts", stored.RequestPath)
	assert.Equal(t, fingerprint([]byte(accountBody)), stored.RequestHash)
	assert.Equal(t, http.StatusCreated, stored.ResponseStatus)
	assert.Equal(t, `{"id":1}`, stored.ResponseBody)
	assert.Equal(t, "/accounts/1", stored.ResponseLocation)
}

func TestIdempotency_SecondRequestReturnsCached(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	cached := &models.IdempotencyKey{
		Key:              "duplicate-key",
		RequestPath:      "/residents",
		RequestHash:      fingerprint([]byte(`{"firstname":"Ivan"}`)),
		ResponseStatus:   http.StatusCreated,
		ResponseBody:     `{"id":7}`,
		ResponseLocation: "/residents/7",
	}
	repo.On("Get", mock.Anything, "duplicate-key", "/residents").Return(cached, nil)

	var replays replayCount
	middleware := Idempotency(repo, &replays, testLogger())

	callCount := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, postRequest("/residents", "duplicate-key", `{"firstname":"Ivan"}`))

	assert.Equal(t, 0, callCount, "handler should not be called when cached")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "true", rec.Header().Get(replayedHeader))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "/residents/7", rec.Header().Get("Location"))
	assert.Equal(t, `{"id":7}`, rec.Body.String())
	assert.Equal(t, replayCount(1), replays)
}

func TestIdempotency_KeyReusedWithDifferentBody(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	cached := &models.IdempotencyKey{
		Key:            "reused",
		RequestPath:    "/accounts",
		RequestHash:    fingerprint([]byte(`{"account_number":"1"}`)),
		ResponseStatus: http.StatusCreated,
		ResponseBody:   `{"id":1}`,
	}
	repo.On("Get", mock.Anything, "reused", "/accounts").Return(cached, nil)

	middleware := Idempotency(repo, nil, testLogger())

	rec := httptest.NewRecorder()
	middleware(testHandler(http.StatusCreated, `{}`)).
		ServeHTTP(rec, postRequest("/accounts", "reused", `{"account_number":"2"}`))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "idempotency_key_reused")
	assert.Empty(t, rec.Header().Get(replayedHeader))
}

func TestIdempotency_SameKeyDifferentPathsAreSeparate(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "shared-key", mock.Anything).Return(nil, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(nil)

	middleware := Idempotency(repo, nil, testLogger())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`)) //nolint:errcheck // test helper
	})

	rec1 := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec1, postRequest("/accounts", "shared-key", "{}"))

	rec2 := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec2, postRequest("/residents", "shared-key", "{}"))

	assert.Contains(t, rec1.Body.String(), "accounts")
	assert.Contains(t, rec2.Body.String(), "residents")

	repo.AssertCalled(t, "Get", mock.Anything, "shared-key", "/accounts")
	repo.AssertCalled(t, "Get", mock.Anything, "shared-key", "/residents")
}

func TestIdempotency_FailedResponsesNotCached(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			repo := mocks.NewMockIdempotencyRepository(t)
			repo.On("Get", mock.Anything, "error-key", "/accounts").Return(nil, nil)

			middleware := Idempotency(repo, nil, testLogger())

			rec := httptest.NewRecorder()
			middleware(testHandler(status, `{"error":"x"}`)).
				ServeHTTP(rec, postRequest("/accounts", "error-key", accountBody))

			assert.Equal(t, status, rec.Code)
			repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
		})
	}
}

func TestIdempotency_RepoGetErrorFailsOpen(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "test-key", "/accounts").Return(nil, errors.New("database connection failed"))

	middleware := Idempotency(repo, nil, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, postRequest("/accounts", "test-key", accountBody))

	assert.True(t, handlerCalled, "handler should be called on repo.Get error (fail open)")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestIdempotency_RepoStoreErrorDoesNotAffectResponse(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "test-key", "/residents").Return(nil, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(errors.New("failed to store"))

	middleware := Idempotency(repo, nil, testLogger())

	rec := httptest.NewRecorder()
	middleware(testHandler(http.StatusCreated, `{"id":3}`)).
		ServeHTTP(rec, postRequest("/residents", "test-key", "{}"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"id":3}`, rec.Body.String())
}

func TestIdempotency_OversizedBodyRejected(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, nil, testLogger())

	body := strings.Repeat("a", maxIdempotentBody+1)
	rec := httptest.NewRecorder()
	middleware(testHandler(http.StatusCreated, "")).ServeHTTP(rec, postRequest("/accounts", "big", body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
