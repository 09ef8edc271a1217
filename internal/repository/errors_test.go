package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Naklen/erc-test/internal/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		err  error
		want error
		name string
	}{
		{
			name: "nil stays nil",
		},
		{
			name: "record not found",
			err:  fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound),
			want: models.ErrNotFound,
		},
		{
			name: "duplicate account number",
			err:  &pq.Error{Code: pgUniqueViolation, Constraint: constraintAccountNumber},
			want: models.ErrDuplicateAccountNumber,
		},
		{
			name: "duplicate document id",
			err:  &pq.Error{Code: pgUniqueViolation, Constraint: constraintDocumentID},
			want: models.ErrDuplicateDocumentID,
		},
		{
			name: "foreign key violation means the parent is gone",
			err:  &pq.Error{Code: pgForeignKeyViolation, Constraint: constraintLinkAccount},
			want: models.ErrNotFound,
		},
		{
			name: "deleted resident is not a missing account",
			err:  &pq.Error{Code: pgForeignKeyViolation, Constraint: constraintLinkResident},
			want: errResidentGone,
		},
		{
			name: "unique violation on unknown constraint passes through",
			err:  &pq.Error{Code: pgUniqueViolation, Constraint: "idempotency_keys_pkey"},
		},
		{
			name: "unrelated error passes through",
			err:  other,
			want: other,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)

			switch {
			case tt.err == nil:
				assert.NoError(t, got)
			case tt.want == nil:
				assert.Equal(t, tt.err, got)
			default:
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}

func TestLikeContains(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "100", want: "%100%"},
		{in: "50%", want: `%50\%%`},
		{in: "a_b", want: `%a\_b%`},
		{in: `c:\d`, want: `%c:\\d%`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, likeContains(tt.in))
		})
	}
}

func TestRetryOnResidentGone(t *testing.T) {
	t.Run("retries until the insert succeeds", func(t *testing.T) {
		calls := 0
		err := retryOnResidentGone(3, func() error {
			calls++
			if calls < 2 {
				return translateError(&pq.Error{Code: pgForeignKeyViolation, Constraint: constraintLinkResident})
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("missing account is not retried", func(t *testing.T) {
		calls := 0
		err := retryOnResidentGone(3, func() error {
			calls++
			return translateError(&pq.Error{Code: pgForeignKeyViolation, Constraint: constraintLinkAccount})
		})

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		calls := 0
		err := retryOnResidentGone(3, func() error {
			calls++
			return translateError(&pq.Error{Code: pgForeignKeyViolation, Constraint: constraintLinkResident})
		})

		assert.ErrorIs(t, err, errResidentGone)
		assert.NotErrorIs(t, err, models.ErrNotFound)
		assert.Equal(t, 3, calls)
	})
}
