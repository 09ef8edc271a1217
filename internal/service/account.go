package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Naklen/erc-test/internal/models"
	"github.com/Naklen/erc-test/internal/repository"
)

// AccountService handles account records
type AccountService struct {
	accounts repository.AccountRepository
	recorder Recorder
	logger   *slog.Logger
}

// NewAccountService creates a new AccountService. recorder may be nil.
func NewAccountService(accounts repository.AccountRepository, recorder Recorder, logger *slog.Logger) *AccountService {
	return &AccountService{
		accounts: accounts,
		recorder: recorderOrNoop(recorder),
		logger:   logger,
	}
}

// List returns every account. Residents are not loaded.
func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, internalError("failed to list accounts", err)
	}
	return accounts, nil
}

// Get returns a single account with its residents.
func (s *AccountService) Get(ctx context.Context, id int64) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, accountNotFound(id)
	}
	if err != nil {
		return nil, internalError("failed to get account", err)
	}
	return account, nil
}

// Create validates the input and stores a new account with no residents.
func (s *AccountService) Create(ctx context.Context, in models.AccountInput) (*models.Account, error) {
	messages, err := ValidateAccount(ctx, s.accounts, in, false)
	if err != nil {
		return nil, internalError("failed to validate account", err)
	}
	if len(messages) > 0 {
		s.recorder.RecordValidationFailure(EntityAccount)
		return nil, validationError(messages)
	}

	account := &models.Account{
		AccountNumber: deref(in.AccountNumber),
		OpenDate:      deref(in.OpenDate),
		CloseDate:     closeDate(in.CloseDate),
		Address:       deref(in.Address),
		SpaceArea:     deref(in.SpaceArea),
		Residents:     []models.Resident{},
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		// Another request took the number between the check and the insert.
		if errors.Is(err, models.ErrDuplicateAccountNumber) {
			s.recorder.RecordValidationFailure(EntityAccount)
			return nil, validationError([]string{MsgDuplicateAccountNumber})
		}
		return nil, internalError("failed to create account", err)
	}

	s.recorder.RecordCreated(EntityAccount)
	s.logger.InfoContext(ctx, "account created", "account_id", account.ID)

	return account, nil
}

// Update replaces the mutable fields of an existing account. The account
// number in the input is ignored.
func (s *AccountService) Update(ctx context.Context, id int64, in models.AccountInput) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	messages, err := ValidateAccount(ctx, s.accounts, in, true)
	if err != nil {
		return internalError("failed to validate account", err)
	}
	if len(messages) > 0 {
		s.recorder.RecordValidationFailure(EntityAccount)
		return validationError(messages)
	}

	account := &models.Account{
		ID:        id,
		OpenDate:  deref(in.OpenDate),
		CloseDate: closeDate(in.CloseDate),
		Address:   deref(in.Address),
		SpaceArea: deref(in.SpaceArea),
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return accountNotFound(id)
		}
		return internalError("failed to update account", err)
	}

	return nil
}

// Delete removes an account and its resident links.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err := s.accounts.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return accountNotFound(id)
		}
		return internalError("failed to delete account", err)
	}

	s.logger.InfoContext(ctx, "account deleted", "account_id", id)
	return nil
}

// Search returns the accounts matching params, residents included.
func (s *AccountService) Search(ctx context.Context, params AccountSearchParams) ([]models.Account, error) {
	filter := BuildAccountSearch(params)
	if nonEmpty(params.OpenDate) != nil && filter.OpenDate == nil {
		s.logger.DebugContext(ctx, "ignoring unparseable open_date filter", "open_date", *params.OpenDate)
	}
	if params.WithResidents != nil {
		if _, ok := parseSearchFlag(*params.WithResidents); !ok {
			s.logger.DebugContext(ctx, "ignoring unparseable with_residents filter", "with_residents", *params.WithResidents)
		}
	}

	accounts, err := s.accounts.Search(ctx, filter)
	if err != nil {
		return nil, internalError("failed to search accounts", err)
	}
	return accounts, nil
}

// AttachResidents links residents to an account. Repeated IDs count once and
// IDs that match no resident are skipped without error.
func (s *AccountService) AttachResidents(ctx context.Context, accountID int64, residentIDs []int64) error {
	if err := s.ensureExists(ctx, accountID); err != nil {
		return err
	}

	ids := uniqueIDs(residentIDs)
	attached, err := s.accounts.AttachResidents(ctx, accountID, ids)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return accountNotFound(accountID)
		}
		return internalError("failed to attach residents", err)
	}

	s.logger.InfoContext(ctx, "residents attached",
		"account_id", accountID,
		"requested", len(ids),
		"attached", attached,
	)
	return nil
}

func (s *AccountService) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.accounts.Exists(ctx, id)
	if err != nil {
		return internalError("failed to check account", err)
	}
	if !exists {
		return accountNotFound(id)
	}
	return nil
}

// closeDate normalises the unset sentinel to nil.
func closeDate(t *time.Time) *time.Time {
	if !models.IsDateSet(t) {
		return nil
	}
	v := *t
	return &v
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
