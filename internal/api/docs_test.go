package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	assert.Equal(t, "Account API", doc.Info.Title)
	for _, path := range []string{"/accounts", "/accounts/{id}", "/accounts/search", "/accounts/add-residents", "/residents", "/residents/{id}", "/health"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	RegisterDocsRoutes(mux)

	t.Run("root redirects to docs", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/docs", rec.Header().Get("Location"))
	})

	t.Run("swagger ui", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Account API")
	})

	t.Run("json document", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var doc map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, "3.0.3", doc["openapi"])
	})

	t.Run("yaml document", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "operationId: SearchAccounts")
	})
}
