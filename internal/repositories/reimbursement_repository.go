package repositories

import (
	"errors"
	"fmt"

	"vereinsbudget/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrReimbursementNotFound = errors.New("reimbursement not found")

type reimbursementRepository struct {
	db *gorm.DB
}

// NewReimbursementRepository creates a new reimbursement repository
func NewReimbursementRepository(db *gorm.DB) ReimbursementRepositoryInterface {
	return &reimbursementRepository{
		db: db,
	}
}

func (r *reimbursementRepository) Create(reimbursement *models.Reimbursement) error {
	if err := r.db.Create(reimbursement).Error; err != nil {
		return fmt.Errorf("failed to create reimbursement: %w", err)
	}
	return nil
}

func (r *reimbursementRepository) GetByID(id uuid.UUID) (*models.Reimbursement, error) {
	reimbursement := &models.Reimbursement{}
	if err := r.db.First(reimbursement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReimbursementNotFound
		}
		return nil, fmt.Errorf("failed to get reimbursement: %w", err)
	}
	return reimbursement, nil
}

func (r *reimbursementRepository) ListByOrganization(orgID uuid.UUID, status string, offset, limit int) ([]models.Reimbursement, int64, error) {
	var reimbursements []models.Reimbursement
	var total int64

	query := r.db.Model(&models.Reimbursement{}).Where("organization_id = ?", orgID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reimbursements: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&reimbursements).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reimbursements: %w", err)
	}

	return reimbursements, total, nil
}

func (r *reimbursementRepository) ListByUser(userID uuid.UUID, offset, limit int) ([]models.Reimbursement, int64, error) {
	var reimbursements []models.Reimbursement
	var total int64

	if err := r.db.Model(&models.Reimbursement{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reimbursements: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&reimbursements).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reimbursements: %w", err)
	}

	return reimbursements, total, nil
}

func (r *reimbursementRepository) Update(reimbursement *models.Reimbursement) error {
	result := r.db.Model(&models.Reimbursement{}).
		Where("id = ?", reimbursement.ID).
		Updates(reimbursement)
	if result.Error != nil {
		return fmt.Errorf("failed to update reimbursement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReimbursementNotFound
	}
	return nil
}
