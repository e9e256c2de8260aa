package repositories

import (
	"errors"
	"fmt"

	"vereinsbudget/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrOrganizationNotFound = errors.New("organization not found")

type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepositoryInterface {
	return &organizationRepository{
		db: db,
	}
}

func (r *organizationRepository) Create(org *models.Organization) error {
	if err := r.db.Create(org).Error; err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

func (r *organizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	org := &models.Organization{}
	if err := r.db.First(org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

func (r *organizationRepository) Update(org *models.Organization) error {
	result := r.db.Model(&models.Organization{}).Where("id = ?", org.ID).Updates(org)
	if result.Error != nil {
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrganizationNotFound
	}
	return nil
}
