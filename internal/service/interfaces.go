package service

import (
	"context"

	"github.com/Naklen/erc-test/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// AccountManager handles account records and their resident links
type AccountManager interface {
	List(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, id int64) (*models.Account, error)
	Create(ctx context.Context, in models.AccountInput) (*models.Account, error)
	Update(ctx context.Context, id int64, in models.AccountInput) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, params AccountSearchParams) ([]models.Account, error)
	AttachResidents(ctx context.Context, accountID int64, residentIDs []int64) error
}

// ResidentManager handles resident records
type ResidentManager interface {
	List(ctx context.Context) ([]models.Resident, error)
	Get(ctx context.Context, id int64) (*models.Resident, error)
	Create(ctx context.Context, in models.ResidentInput) (*models.Resident, error)
	Update(ctx context.Context, id int64, in models.ResidentInput) error
	Delete(ctx context.Context, id int64) error
}

// Ensure concrete types implement interfaces
var (
	_ AccountManager  = (*AccountService)(nil)
	_ ResidentManager = (*ResidentService)(nil)
)
