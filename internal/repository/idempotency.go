package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Naklen/erc-test/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IdempotencyRepository stores replayable responses for create requests.
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
}

type idempotencyRepository struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewIdempotencyRepository creates an IdempotencyRepository whose entries
// stop replaying once older than ttl.
func NewIdempotencyRepository(orm *gorm.DB, ttl time.Duration) IdempotencyRepository {
	return &idempotencyRepository{db: orm, ttl: ttl, now: time.Now}
}

// Get returns the stored response, or nil when the key is unknown or expired.
func (r *idempotencyRepository) Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	var idemKey models.IdempotencyKey
	err := r.db.WithContext(ctx).
		Where("key = ? AND request_path = ? AND created_at > ?", key, requestPath, r.now().Add(-r.ttl)).
		Take(&idemKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency key: %w", err)
	}
	return &idemKey, nil
}

// Store saves the response. An expired entry under the same key is replaced.
func (r *idempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	if idemKey.CreatedAt.IsZero() {
		idemKey.CreatedAt = r.now()
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}, {Name: "request_path"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"request_hash", "response_status", "response_body", "response_location", "created_at",
			}),
		}).
		Create(idemKey).Error
	if err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}
