package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Naklen/erc-test/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	List(ctx context.Context) ([]models.Account, error)
	FindByID(ctx context.Context, id int64) (*models.Account, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter models.AccountSearch) ([]models.Account, error)
	AttachResidents(ctx context.Context, accountID int64, residentIDs []int64) (int64, error)
}

// accountResident is a row of the account/resident join table.
type accountResident struct {
	AccountID  int64 `gorm:"column:account_id;primaryKey"`
	ResidentID int64 `gorm:"column:resident_id;primaryKey"`
}

func (accountResident) TableName() string {
	return "account_residents"
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(orm *gorm.DB) AccountRepository {
	return &accountRepository{db: orm}
}

func residentsByID(db *gorm.DB) *gorm.DB {
	return db.Order("residents.id")
}

// List returns every account without its residents.
func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).Order("id").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", translateError(err))
	}
	return accounts, nil
}

// FindByID retrieves an account and its residents.
func (r *accountRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		Preload("Residents", residentsByID).
		First(&account, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find account by id: %w", translateError(err))
	}
	return &account, nil
}

// Exists reports whether an account with the given id is stored.
func (r *accountRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", translateError(err))
	}
	return count > 0, nil
}

// ExistsByAccountNumber reports whether any account already uses the number.
func (r *accountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("account_number = ?", accountNumber).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check account number: %w", translateError(err))
	}
	return count > 0, nil
}

// Create inserts the account and fills in its generated ID. Residents are
// never written here; links are created through AttachResidents.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(account).Error
	if err != nil {
		return fmt.Errorf("failed to create account: %w", translateError(err))
	}
	return nil
}

// Update overwrites the mutable columns. The account number is left alone.
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	result := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"open_date":  account.OpenDate,
			"close_date": account.CloseDate,
			"address":    account.Address,
			"space_area": account.SpaceArea,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update account: %w", models.ErrNotFound)
	}
	return nil
}

// Delete removes the account together with its resident links. The
// residents themselves are kept.
func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&accountResident{}).Error; err != nil {
			return translateError(err)
		}

		result := tx.Delete(&models.Account{}, id)
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// Search returns the accounts matching every filter set in filter, each
// with its residents loaded.
func (r *accountRepository) Search(ctx context.Context, filter models.AccountSearch) ([]models.Account, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Preload("Residents", residentsByID)

	var accounts []models.Account
	if err := applyAccountSearch(query, filter).Order("accounts.id").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", translateError(err))
	}
	return accounts, nil
}

// attachAttempts bounds how often AttachResidents re-reads the residents
// after one of them was deleted mid-insert.
const attachAttempts = 3

// AttachResidents links the residents that exist among residentIDs to the
// account. Unknown resident IDs and links that already exist are skipped.
// It returns the number of links created.
func (r *accountRepository) AttachResidents(ctx context.Context, accountID int64, residentIDs []int64) (int64, error) {
	if len(residentIDs) == 0 {
		return 0, nil
	}

	var attached int64
	err := retryOnResidentGone(attachAttempts, func() error {
		var err error
		attached, err = r.attachOnce(ctx, accountID, residentIDs)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to attach residents: %w", err)
	}
	return attached, nil
}

// retryOnResidentGone runs fn until it succeeds, fails for another reason,
// or attempts run out.
func retryOnResidentGone(attempts int, fn func() error) error {
	var err error
	for range attempts {
		if err = fn(); !errors.Is(err, errResidentGone) {
			return err
		}
	}
	return err
}

func (r *accountRepository) attachOnce(ctx context.Context, accountID int64, residentIDs []int64) (int64, error) {
	var attached int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []int64
		err := tx.Model(&models.Resident{}).
			Where("id IN ?", residentIDs).
			Order("id").
			Pluck("id", &existing).Error
		if err != nil {
			return translateError(err)
		}
		if len(existing) == 0 {
			return nil
		}

		links := make([]accountResident, 0, len(existing))
		for _, residentID := range existing {
			links = append(links, accountResident{AccountID: accountID, ResidentID: residentID})
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links)
		if result.Error != nil {
			return translateError(result.Error)
		}
		attached = result.RowsAffected
		return nil
	})
	return attached, err
}
