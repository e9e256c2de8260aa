package services

import (
	"errors"
	"fmt"
	"log/slog"

	"vereinsbudget/internal/models"
	"vereinsbudget/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAllowanceNotFound    = errors.New("allowance not found")
	ErrAllowanceCapExceeded = errors.New("allowance exceeds the annual tax-free cap")
)

// allowanceService implements AllowanceServiceInterface
type allowanceService struct {
	allowanceRepo repositories.AllowanceRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	annualCap     decimal.Decimal
	metrics       MetricsRecorderInterface
	logger        *slog.Logger
}

// NewAllowanceService creates the volunteer allowance service. annualCap is
// the statutory tax-free total per volunteer and calendar year.
func NewAllowanceService(
	allowanceRepo repositories.AllowanceRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	annualCap float64,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AllowanceServiceInterface {
	return &allowanceService{
		allowanceRepo: allowanceRepo,
		userRepo:      userRepo,
		annualCap:     decimal.NewFromFloat(annualCap),
		metrics:       metrics,
		logger:        logger,
	}
}

// GrantAllowance records a payout after checking the annual cap across all
// of the volunteer's payouts in that year.
func (s *allowanceService) GrantAllowance(allowance *models.Allowance) (*models.Allowance, error) {
	if err := allowance.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(allowance.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if user.OrganizationID != allowance.OrganizationID {
		return nil, ErrWrongOrganization
	}

	granted, err := s.allowanceRepo.SumByUserAndYear(allowance.UserID, allowance.Year)
	if err != nil {
		return nil, err
	}
	if granted.Add(allowance.Amount).GreaterThan(s.annualCap) {
		return nil, ErrAllowanceCapExceeded
	}

	if err := s.allowanceRepo.Create(allowance); err != nil {
		return nil, err
	}

	s.metrics.RecordAllowanceGranted()
	s.logger.Info("allowance granted",
		"allowance_id", allowance.ID,
		"user_id", allowance.UserID,
		"year", allowance.Year,
		"amount", allowance.Amount,
	)
	return allowance, nil
}

// RemainingBudget returns how much of the annual cap is still available.
func (s *allowanceService) RemainingBudget(userID uuid.UUID, year int) (decimal.Decimal, error) {
	granted, err := s.allowanceRepo.SumByUserAndYear(userID, year)
	if err != nil {
		return decimal.Zero, err
	}

	remaining := s.annualCap.Sub(granted)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return remaining, nil
}

func (s *allowanceService) ListByOrganization(orgID uuid.UUID, year, offset, limit int) ([]models.Allowance, int64, error) {
	return s.allowanceRepo.ListByOrganization(orgID, year, offset, limit)
}

func (s *allowanceService) RevokeAllowance(orgID, id uuid.UUID) error {
	allowance, err := s.allowanceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAllowanceNotFound) {
			return ErrAllowanceNotFound
		}
		return err
	}
	if allowance.OrganizationID != orgID {
		return ErrWrongOrganization
	}
	return s.allowanceRepo.Delete(id)
}
