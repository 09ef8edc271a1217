package repository

import (
	"context"
	"fmt"

	"github.com/Naklen/erc-test/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResidentRepository defines the interface for resident data access
type ResidentRepository interface {
	List(ctx context.Context) ([]models.Resident, error)
	FindByID(ctx context.Context, id int64) (*models.Resident, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByDocumentID(ctx context.Context, documentID string, excludeID int64) (bool, error)
	Create(ctx context.Context, resident *models.Resident) error
	Update(ctx context.Context, resident *models.Resident) error
	Delete(ctx context.Context, id int64) error
}

type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository creates a new ResidentRepository
func NewResidentRepository(orm *gorm.DB) ResidentRepository {
	return &residentRepository{db: orm}
}

func (r *residentRepository) List(ctx context.Context) ([]models.Resident, error) {
	var residents []models.Resident
	if err := r.db.WithContext(ctx).Order("id").Find(&residents).Error; err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", translateError(err))
	}
	return residents, nil
}

func (r *residentRepository) FindByID(ctx context.Context, id int64) (*models.Resident, error) {
	var resident models.Resident
	if err := r.db.WithContext(ctx).First(&resident, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find resident by id: %w", translateError(err))
	}
	return &resident, nil
}

func (r *residentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Resident{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check resident existence: %w", translateError(err))
	}
	return count > 0, nil
}

// ExistsByDocumentID reports whether a resident other than excludeID holds
// the document ID. Pass 0 as excludeID when creating.
func (r *residentRepository) ExistsByDocumentID(ctx context.Context, documentID string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Resident{}).
		Where("document_id = ? AND id <> ?", documentID, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check document id: %w", translateError(err))
	}
	return count > 0, nil
}

func (r *residentRepository) Create(ctx context.Context, resident *models.Resident) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(resident).Error
	if err != nil {
		return fmt.Errorf("failed to create resident: %w", translateError(err))
	}
	return nil
}

// Update replaces all resident fields, document ID included.
func (r *residentRepository) Update(ctx context.Context, resident *models.Resident) error {
	result := r.db.WithContext(ctx).
		Model(&models.Resident{}).
		Where("id = ?", resident.ID).
		Updates(map[string]any{
			"document_id": resident.DocumentID,
			"firstname":   resident.Firstname,
			"lastname":    resident.Lastname,
			"surname":     resident.Surname,
			"birth_date":  resident.BirthDate,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update resident: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update resident: %w", models.ErrNotFound)
	}
	return nil
}

// Delete removes the resident and its account links. Linked accounts stay.
func (r *residentRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resident_id = ?", id).Delete(&accountResident{}).Error; err != nil {
			return translateError(err)
		}

		result := tx.Delete(&models.Resident{}, id)
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete resident: %w", err)
	}
	return nil
}
