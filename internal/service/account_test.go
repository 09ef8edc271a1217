package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Naklen/erc-test/internal/models"
	"github.com/Naklen/erc-test/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns account with residents", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		account := &models.Account{
			ID:            7,
			AccountNumber: "100-200",
			Residents:     []models.Resident{{ID: 1}, {ID: 2}},
		}
		repo.On("FindByID", ctx, int64(7)).Return(account, nil)

		result, err := service.Get(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, account, result)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("FindByID", ctx, int64(7)).Return(nil, models.ErrNotFound)

		result, err := service.Get(ctx, 7)

		assert.Nil(t, result)
		svcErr := requireServiceError(t, err, ErrCodeAccountNotFound)
		assert.Equal(t, "account 7 not found", svcErr.Message)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		dbErr := errors.New("connection reset")
		repo.On("FindByID", ctx, int64(7)).Return(nil, dbErr)

		_, err := service.Get(ctx, 7)

		requireServiceError(t, err, ErrCodeInternalError)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAccountService_List(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockAccountRepository(t)
	service := NewAccountService(repo, nil, discardLogger())

	accounts := []models.Account{{ID: 1}, {ID: 2}}
	repo.On("List", ctx).Return(accounts, nil)

	result, err := service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, accounts, result)
}

func TestAccountService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("successful create", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		recorder := newCountingRecorder()
		service := NewAccountService(repo, recorder, discardLogger())

		in := validAccountInput()
		in.CloseDate = ptr(time.Time{})

		repo.On("ExistsByAccountNumber", ctx, "100-200").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Account")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Account).ID = 11
			}).
			Return(nil)

		account, err := service.Create(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, int64(11), account.ID)
		assert.Equal(t, "100-200", account.AccountNumber)
		assert.Equal(t, date(2020, time.January, 10), account.OpenDate)
		assert.Nil(t, account.CloseDate, "zero close date is stored as unset")
		assert.Equal(t, "12 Lenina St, apt 4", account.Address)
		assert.Equal(t, 54.5, account.SpaceArea)
		assert.Empty(t, account.Residents)
		assert.Equal(t, 1, recorder.created[EntityAccount])
	})

	t.Run("validation failure stores nothing", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		recorder := newCountingRecorder()
		service := NewAccountService(repo, recorder, discardLogger())

		in := validAccountInput()
		in.Address = ptr("")
		in.SpaceArea = nil

		repo.On("ExistsByAccountNumber", ctx, "100-200").Return(false, nil)

		account, err := service.Create(ctx, in)

		assert.Nil(t, account)
		svcErr := requireServiceError(t, err, ErrCodeValidationFailed)
		assert.Equal(t, []string{empty("Address"), missing("SpaceArea")}, svcErr.Details)
		assert.Equal(t, 1, recorder.validation[EntityAccount])
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate number", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("ExistsByAccountNumber", ctx, "100-200").Return(true, nil)

		_, err := service.Create(ctx, validAccountInput())

		svcErr := requireServiceError(t, err, ErrCodeValidationFailed)
		assert.Equal(t, []string{MsgDuplicateAccountNumber}, svcErr.Details)
	})

	t.Run("number taken between check and insert", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("ExistsByAccountNumber", ctx, "100-200").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Account")).Return(models.ErrDuplicateAccountNumber)

		_, err := service.Create(ctx, validAccountInput())

		svcErr := requireServiceError(t, err, ErrCodeValidationFailed)
		assert.Equal(t, []string{MsgDuplicateAccountNumber}, svcErr.Details)
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("ExistsByAccountNumber", ctx, "100-200").Return(false, errors.New("timeout"))

		_, err := service.Create(ctx, validAccountInput())

		requireServiceError(t, err, ErrCodeInternalError)
	})
}

func TestAccountService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates mutable fields only", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		in := validAccountInput()
		in.AccountNumber = ptr("999-999")
		in.CloseDate = ptr(date(2024, time.June, 1))

		repo.On("Exists", ctx, int64(3)).Return(true, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(a *models.Account) bool {
			return a.ID == 3 &&
				a.AccountNumber == "" &&
				a.CloseDate != nil && a.CloseDate.Equal(date(2024, time.June, 1)) &&
				a.Address == "12 Lenina St, apt 4"
		})).Return(nil)

		err := service.Update(ctx, 3, in)

		require.NoError(t, err)
		repo.AssertNotCalled(t, "ExistsByAccountNumber", mock.Anything, mock.Anything)
	})

	t.Run("missing account number is accepted", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		in := validAccountInput()
		in.AccountNumber = nil

		repo.On("Exists", ctx, int64(3)).Return(true, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*models.Account")).Return(nil)

		assert.NoError(t, service.Update(ctx, 3, in))
	})

	t.Run("unknown account", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(3)).Return(false, nil)

		err := service.Update(ctx, 3, validAccountInput())

		requireServiceError(t, err, ErrCodeAccountNotFound)
	})

	t.Run("close date before open date", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		in := validAccountInput()
		in.CloseDate = ptr(date(2019, time.January, 1))

		repo.On("Exists", ctx, int64(3)).Return(true, nil)

		err := service.Update(ctx, 3, in)

		svcErr := requireServiceError(t, err, ErrCodeValidationFailed)
		assert.Equal(t, []string{MsgCloseDateBeforeOpen}, svcErr.Details)
	})

	t.Run("account removed concurrently", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(3)).Return(true, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*models.Account")).Return(models.ErrNotFound)

		err := service.Update(ctx, 3, validAccountInput())

		requireServiceError(t, err, ErrCodeAccountNotFound)
	})
}

func TestAccountService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(5)).Return(true, nil)
		repo.On("Delete", ctx, int64(5)).Return(nil)

		assert.NoError(t, service.Delete(ctx, 5))
	})

	t.Run("unknown account", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(5)).Return(false, nil)

		requireServiceError(t, service.Delete(ctx, 5), ErrCodeAccountNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestAccountService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards the built filter", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		day := date(2022, time.February, 2)
		expected := models.AccountSearch{
			Number:        ptr("100"),
			OpenDate:      &day,
			WithResidents: true,
		}
		accounts := []models.Account{{ID: 1, AccountNumber: "100-200"}}
		repo.On("Search", ctx, expected).Return(accounts, nil)

		result, err := service.Search(ctx, AccountSearchParams{
			Number:        ptr("100"),
			OpenDate:      ptr("2022-02-02"),
			WithResidents: ptr("true"),
		})

		require.NoError(t, err)
		assert.Equal(t, accounts, result)
	})

	t.Run("bad date drops only that filter", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("Search", ctx, models.AccountSearch{Address: ptr("Lenina")}).Return([]models.Account{}, nil)

		result, err := service.Search(ctx, AccountSearchParams{
			Address:  ptr("Lenina"),
			OpenDate: ptr("02/30/2022"),
		})

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestAccountService_AttachResidents(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated ids count once", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(1)).Return(true, nil)
		repo.On("AttachResidents", ctx, int64(1), []int64{4, 2, 9}).Return(int64(2), nil)

		err := service.AttachResidents(ctx, 1, []int64{4, 2, 4, 9, 2})

		assert.NoError(t, err)
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(1)).Return(true, nil)
		repo.On("AttachResidents", ctx, int64(1), []int64{}).Return(int64(0), nil)

		assert.NoError(t, service.AttachResidents(ctx, 1, nil))
	})

	t.Run("unknown account", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(1)).Return(false, nil)

		err := service.AttachResidents(ctx, 1, []int64{2})

		requireServiceError(t, err, ErrCodeAccountNotFound)
		repo.AssertNotCalled(t, "AttachResidents", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := NewAccountService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(1)).Return(true, nil)
		repo.On("AttachResidents", ctx, int64(1), []int64{2}).Return(int64(0), errors.New("deadlock"))

		requireServiceError(t, service.AttachResidents(ctx, 1, []int64{2}), ErrCodeInternalError)
	})
}
