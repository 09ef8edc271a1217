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

func TestResidentService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := mocks.NewMockResidentRepository(t)
		service := NewResidentService(repo, nil, discardLogger())

		resident := &models.Resident{ID: 2, Firstname: "Ivan"}
		repo.On("FindByID", ctx, int64(2)).Return(resident, nil)

		result, err := service.Get(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, resident, result)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockResidentRepository(t)
		service := NewResidentService(repo, nil, discardLogger())

		repo.On("FindByID", ctx, int64(2)).Return(nil, models.ErrNotFound)

		_, err := service.Get(ctx, 2)

		svcErr := requireServiceError(t, err, ErrCodeResidentNotFound)
		assert.Equal(t, "resident 2 not found", svcErr.Message)
	})
}

func TestResidentService_List(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockResidentRepository(t)
	service := NewResidentService(repo, nil, discardLogger())

	repo.On("List", ctx).Return(nil, errors.New("closed"))

	_, err := service.List(ctx)

	requireServiceError(t, err, ErrCodeInternalError)
}

func TestResidentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("successful create", func(t *testing.T) {
		repo := mocks.NewMockResidentRepository(t)
		recorder := newCountingRecorder()
		service := NewResidentService(repo, recorder, discardLogger())

		in := validResidentInput()
		in.Surname = ptr("Sergeevich")

		repo.On("ExistsByDocumentID", ctx, "4510 123456", int64(0)).Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Resident")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Resident).ID = 9
			}).
			Return(nil)

		resident, err := service.Create(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, int64(9), resident.ID)
		assert.Equal(t, "4510 123456", resident.DocumentID)
		assert.Equal(t, "Ivan", resident.Firstname)
		assert.Equal(t, "Petrov", resident.Lastname)
		require.NotNil(t, resident.Surname)
		assert.Equal(t, "Sergeevich", *resident.Surname)
		assert.Equal(t, date(1990, time.May, 1), resident.BirthDate)
		assert.Equal(t, 1, recorder.created[EntityResident])
	})

	t.Run("every violation reported", func(t *testing.T) {
		repo := mocks.NewMockResidentRepository(t)
		recorder := newCountingRecorder()
		service := NewResidentService(repo, recorder, discardLogger())

		repo.On("ExistsByDocumentID", ctx, "4510 123456", int64(0)).Return(true, nil)

		in := validResidentInput()
		in.Firstname = ptr("")
		in.BirthDate = nil

		_, err := service.Create(ctx, in)

		svcErr := requireServiceError(t, err, ErrCodeValidationFailed)
		assert.Equal(t, []string{
			empty("Firstname"),
			missing("BirthDate"),
			MsgDuplicateDocumentID,
		}, svcErr.Details)
		assert.Equal(t, 1, recorder.validation[EntityResident])
	})

	t.Run("document taken between check and insert", func(t *testing.T) {
		repo := mocks.NewMockResidentRepository(t)
		service := NewResidentService(repo, nil, discardLogger())

		repo.On("ExistsByDocumentID", ctx, "4510 123456", int64(0)).Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Resident")).Return(models.ErrDuplicateDocumentID)

		_, err := service.Create(ctx, validResidentInput())

		svcErr := requireServiceError(t, err, ErrCodeValidationFailed)
		assert.Equal(t, []string{MsgDuplicateDocumentID}, svcErr.Details)
	})
}

func TestResidentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps own document id", func(t *testing.T) {
		repo := mocks.NewMockResidentRepository(t)
		service := NewResidentService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(4)).Return(true, nil)
		repo.On("ExistsByDocumentID", ctx, "4510 123456", int64(4)).Return(false, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(r *models.Resident) bool {
			return r.ID == 4 && r.DocumentID == "4510 123456"
		})).Return(nil)

		assert.NoError(t, service.Update(ctx, 4, validResidentInput()))
	})

	t.Run("takes another resident's document id", func(t *testing.T) {
		repo := mocks.NewMockResidentRepository(t)
		service := NewResidentService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(4)).Return(true, nil)
		repo.On("ExistsByDocumentID", ctx, "4510 123456", int64(4)).Return(true, nil)

		err := service.Update(ctx, 4, validResidentInput())

		svcErr := requireServiceError(t, err, ErrCodeValidationFailed)
		assert.Equal(t, []string{MsgDuplicateDocumentID}, svcErr.Details)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown resident", func(t *testing.T) {
		repo := mocks.NewMockResidentRepository(t)
		service := NewResidentService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(4)).Return(false, nil)

		requireServiceError(t, service.Update(ctx, 4, validResidentInput()), ErrCodeResidentNotFound)
	})

	t.Run("constraint race on update", func(t *testing.T) {
		repo := mocks.NewMockResidentRepository(t)
		service := NewResidentService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(4)).Return(true, nil)
		repo.On("ExistsByDocumentID", ctx, "4510 123456", int64(4)).Return(false, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*models.Resident")).Return(models.ErrDuplicateDocumentID)

		requireServiceError(t, service.Update(ctx, 4, validResidentInput()), ErrCodeValidationFailed)
	})
}

func TestResidentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		repo := mocks.NewMockResidentRepository(t)
		service := NewResidentService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(6)).Return(true, nil)
		repo.On("Delete", ctx, int64(6)).Return(nil)

		assert.NoError(t, service.Delete(ctx, 6))
	})

	t.Run("unknown resident", func(t *testing.T) {
		repo := mocks.NewMockResidentRepository(t)
		service := NewResidentService(repo, nil, discardLogger())

		repo.On("Exists", ctx, int64(6)).Return(false, nil)

		requireServiceError(t, service.Delete(ctx, 6), ErrCodeResidentNotFound)
	})
}
