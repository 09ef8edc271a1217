package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Naklen/erc-test/internal/models"
	"github.com/Naklen/erc-test/internal/repository"
)

// ResidentService handles resident records
type ResidentService struct {
	residents repository.ResidentRepository
	recorder  Recorder
	logger    *slog.Logger
}

// NewResidentService creates a new ResidentService. recorder may be nil.
func NewResidentService(residents repository.ResidentRepository, recorder Recorder, logger *slog.Logger) *ResidentService {
	return &ResidentService{
		residents: residents,
		recorder:  recorderOrNoop(recorder),
		logger:    logger,
	}
}

func (s *ResidentService) List(ctx context.Context) ([]models.Resident, error) {
	residents, err := s.residents.List(ctx)
	if err != nil {
		return nil, internalError("failed to list residents", err)
	}
	return residents, nil
}

func (s *ResidentService) Get(ctx context.Context, id int64) (*models.Resident, error) {
	resident, err := s.residents.FindByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, residentNotFound(id)
	}
	if err != nil {
		return nil, internalError("failed to get resident", err)
	}
	return resident, nil
}

func (s *ResidentService) Create(ctx context.Context, in models.ResidentInput) (*models.Resident, error) {
	if err := s.validate(ctx, in, 0); err != nil {
		return nil, err
	}

	resident := newResident(0, in)
	if err := s.residents.Create(ctx, resident); err != nil {
		if errors.Is(err, models.ErrDuplicateDocumentID) {
			s.recorder.RecordValidationFailure(EntityResident)
			return nil, validationError([]string{MsgDuplicateDocumentID})
		}
		return nil, internalError("failed to create resident", err)
	}

	s.recorder.RecordCreated(EntityResident)
	s.logger.InfoContext(ctx, "resident created", "resident_id", resident.ID)

	return resident, nil
}

// Update replaces every field of an existing resident, document ID included.
func (s *ResidentService) Update(ctx context.Context, id int64, in models.ResidentInput) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err := s.validate(ctx, in, id); err != nil {
		return err
	}

	if err := s.residents.Update(ctx, newResident(id, in)); err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateDocumentID):
			s.recorder.RecordValidationFailure(EntityResident)
			return validationError([]string{MsgDuplicateDocumentID})
		case errors.Is(err, models.ErrNotFound):
			return residentNotFound(id)
		}
		return internalError("failed to update resident", err)
	}

	return nil
}

// Delete removes a resident and its account links. Accounts are kept.
func (s *ResidentService) Delete(ctx context.Context, id int64) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err := s.residents.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return residentNotFound(id)
		}
		return internalError("failed to delete resident", err)
	}

	s.logger.InfoContext(ctx, "resident deleted", "resident_id", id)
	return nil
}

func (s *ResidentService) validate(ctx context.Context, in models.ResidentInput, updateID int64) error {
	messages, err := ValidateResident(ctx, s.residents, in, updateID)
	if err != nil {
		return internalError("failed to validate resident", err)
	}
	if len(messages) > 0 {
		s.recorder.RecordValidationFailure(EntityResident)
		return validationError(messages)
	}
	return nil
}

func (s *ResidentService) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.residents.Exists(ctx, id)
	if err != nil {
		return internalError("failed to check resident", err)
	}
	if !exists {
		return residentNotFound(id)
	}
	return nil
}

func newResident(id int64, in models.ResidentInput) *models.Resident {
	return &models.Resident{
		ID:         id,
		DocumentID: deref(in.DocumentID),
		Firstname:  deref(in.Firstname),
		Lastname:   deref(in.Lastname),
		Surname:    in.Surname,
		BirthDate:  deref(in.BirthDate),
	}
}
