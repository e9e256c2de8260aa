package repositories

import (
	"errors"
	"fmt"

	"vereinsbudget/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrAllowanceNotFound = errors.New("allowance not found")

type allowanceRepository struct {
	db *gorm.DB
}

// NewAllowanceRepository creates a new allowance repository
func NewAllowanceRepository(db *gorm.DB) AllowanceRepositoryInterface {
	return &allowanceRepository{
		db: db,
	}
}

func (r *allowanceRepository) Create(allowance *models.Allowance) error {
	if err := r.db.Create(allowance).Error; err != nil {
		return fmt.Errorf("failed to create allowance: %w", err)
	}
	return nil
}

func (r *allowanceRepository) GetByID(id uuid.UUID) (*models.Allowance, error) {
	allowance := &models.Allowance{}
	if err := r.db.First(allowance, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAllowanceNotFound
		}
		return nil, fmt.Errorf("failed to get allowance: %w", err)
	}
	return allowance, nil
}

func (r *allowanceRepository) ListByUserAndYear(userID uuid.UUID, year int) ([]models.Allowance, error) {
	var allowances []models.Allowance
	if err := r.db.Where("user_id = ? AND year = ?", userID, year).
		Order("created_at ASC").
		Find(&allowances).Error; err != nil {
		return nil, fmt.Errorf("failed to list allowances: %w", err)
	}
	return allowances, nil
}

// SumByUserAndYear totals a user's allowance payments for one calendar year.
// The annual cap check is built on this.
func (r *allowanceRepository) SumByUserAndYear(userID uuid.UUID, year int) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.Model(&models.Allowance{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND year = ?", userID, year).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum allowances: %w", err)
	}
	return result.Total, nil
}

func (r *allowanceRepository) ListByOrganization(orgID uuid.UUID, year int, offset, limit int) ([]models.Allowance, int64, error) {
	var allowances []models.Allowance
	var total int64

	query := r.db.Model(&models.Allowance{}).Where("organization_id = ?", orgID)
	if year > 0 {
		query = query.Where("year = ?", year)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count allowances: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&allowances).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list allowances: %w", err)
	}

	return allowances, total, nil
}

func (r *allowanceRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Allowance{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete allowance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAllowanceNotFound
	}
	return nil
}
