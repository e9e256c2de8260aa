package repositories

import (
	"errors"
	"fmt"

	"vereinsbudget/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDonorNotFound = errors.New("donor not found")

type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository creates a new donor repository
func NewDonorRepository(db *gorm.DB) DonorRepositoryInterface {
	return &donorRepository{
		db: db,
	}
}

func (r *donorRepository) Create(donor *models.Donor) error {
	if err := r.db.Create(donor).Error; err != nil {
		return fmt.Errorf("failed to create donor: %w", err)
	}
	return nil
}

func (r *donorRepository) GetByID(id uuid.UUID) (*models.Donor, error) {
	donor := &models.Donor{}
	if err := r.db.First(donor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, fmt.Errorf("failed to get donor: %w", err)
	}
	return donor, nil
}

func (r *donorRepository) ListByOrganization(orgID uuid.UUID, offset, limit int) ([]models.Donor, int64, error) {
	var donors []models.Donor
	var total int64

	if err := r.db.Model(&models.Donor{}).
		Where("organization_id = ?", orgID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count donors: %w", err)
	}

	if err := r.db.Where("organization_id = ?", orgID).
		Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&donors).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list donors: %w", err)
	}

	return donors, total, nil
}

func (r *donorRepository) Update(donor *models.Donor) error {
	result := r.db.Model(&models.Donor{}).Where("id = ?", donor.ID).Updates(donor)
	if result.Error != nil {
		return fmt.Errorf("failed to update donor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDonorNotFound
	}
	return nil
}

func (r *donorRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Donor{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete donor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDonorNotFound
	}
	return nil
}
