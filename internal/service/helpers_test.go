package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingRecorder struct {
	created    map[string]int
	validation map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		created:    map[string]int{},
		validation: map[string]int{},
	}
}

func (r *countingRecorder) RecordCreated(entity string) {
	r.created[entity]++
}

func (r *countingRecorder) RecordValidationFailure(entity string) {
	r.validation[entity]++
}

func requireServiceError(t *testing.T, err error, code string) *ServiceError {
	t.Helper()
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, code, svcErr.Code)
	return svcErr
}
