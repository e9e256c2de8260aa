package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vereinsbudget/internal/models"
	"vereinsbudget/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrReimbursementNotFound = errors.New("reimbursement not found")
	ErrInvalidTransition     = errors.New("invalid reimbursement status transition")
)

// reimbursementService implements ReimbursementServiceInterface
type reimbursementService struct {
	reimbursementRepo repositories.ReimbursementRepositoryInterface
	transactionRepo   repositories.TransactionRepositoryInterface
	userRepo          repositories.UserRepositoryInterface
	metrics           MetricsRecorderInterface
	logger            *slog.Logger
}

// NewReimbursementService creates the reimbursement workflow service
func NewReimbursementService(
	reimbursementRepo repositories.ReimbursementRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ReimbursementServiceInterface {
	return &reimbursementService{
		reimbursementRepo: reimbursementRepo,
		transactionRepo:   transactionRepo,
		userRepo:          userRepo,
		metrics:           metrics,
		logger:            logger,
	}
}

// Submit files a new expense claim
func (s *reimbursementService) Submit(reimbursement *models.Reimbursement) (*models.Reimbursement, error) {
	if err := reimbursement.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(reimbursement.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if user.OrganizationID != reimbursement.OrganizationID {
		return nil, ErrWrongOrganization
	}

	reimbursement.Status = models.ReimbursementStatusSubmitted
	if err := s.reimbursementRepo.Create(reimbursement); err != nil {
		return nil, err
	}

	s.metrics.RecordReimbursementTransition(models.ReimbursementStatusSubmitted)
	s.logger.Info("reimbursement submitted",
		"reimbursement_id", reimbursement.ID,
		"user_id", reimbursement.UserID,
		"amount", reimbursement.Amount,
	)
	return reimbursement, nil
}

func (s *reimbursementService) Get(orgID, id uuid.UUID) (*models.Reimbursement, error) {
	return s.getScoped(orgID, id)
}

func (s *reimbursementService) List(orgID uuid.UUID, status string, offset, limit int) ([]models.Reimbursement, int64, error) {
	return s.reimbursementRepo.ListByOrganization(orgID, status, offset, limit)
}

func (s *reimbursementService) ListForUser(userID uuid.UUID, offset, limit int) ([]models.Reimbursement, int64, error) {
	return s.reimbursementRepo.ListByUser(userID, offset, limit)
}

// Approve moves a submitted claim to approved
func (s *reimbursementService) Approve(orgID, id, decidedBy uuid.UUID, note string) (*models.Reimbursement, error) {
	return s.decide(orgID, id, decidedBy, note, models.ReimbursementStatusApproved)
}

// Reject moves a submitted claim to rejected
func (s *reimbursementService) Reject(orgID, id, decidedBy uuid.UUID, note string) (*models.Reimbursement, error) {
	return s.decide(orgID, id, decidedBy, note, models.ReimbursementStatusRejected)
}

// MarkPaid settles an approved claim and books the matching expense
// transaction against the organization's budget.
func (s *reimbursementService) MarkPaid(orgID, id uuid.UUID) (*models.Reimbursement, error) {
	reimbursement, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, err
	}

	if !reimbursement.CanTransitionTo(models.ReimbursementStatusPaid) {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	txn := &models.Transaction{
		OrganizationID: reimbursement.OrganizationID,
		ProjectID:      reimbursement.ProjectID,
		BookedAt:       now,
		Amount:         reimbursement.Amount.Neg(),
		Status:         models.TransactionStatusProcessed,
		Description:    fmt.Sprintf("Auslagenerstattung: %s", reimbursement.Description),
	}
	if err := s.transactionRepo.Create(txn); err != nil {
		return nil, fmt.Errorf("failed to book payout transaction: %w", err)
	}

	reimbursement.Status = models.ReimbursementStatusPaid
	reimbursement.PaidAt = &now
	reimbursement.TransactionID = &txn.ID
	if err := s.reimbursementRepo.Update(reimbursement); err != nil {
		return nil, err
	}

	s.metrics.RecordReimbursementTransition(models.ReimbursementStatusPaid)
	s.metrics.RecordTransactionCreated("reimbursement")
	s.logger.Info("reimbursement paid",
		"reimbursement_id", reimbursement.ID,
		"transaction_id", txn.ID,
	)
	return reimbursement, nil
}

func (s *reimbursementService) decide(orgID, id, decidedBy uuid.UUID, note, newStatus string) (*models.Reimbursement, error) {
	reimbursement, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, err
	}

	if !reimbursement.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	reimbursement.Status = newStatus
	reimbursement.DecisionNote = note
	reimbursement.DecidedBy = &decidedBy
	reimbursement.DecidedAt = &now
	if err := s.reimbursementRepo.Update(reimbursement); err != nil {
		return nil, err
	}

	s.metrics.RecordReimbursementTransition(newStatus)
	return reimbursement, nil
}

func (s *reimbursementService) getScoped(orgID, id uuid.UUID) (*models.Reimbursement, error) {
	reimbursement, err := s.reimbursementRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrReimbursementNotFound) {
			return nil, ErrReimbursementNotFound
		}
		return nil, err
	}
	if reimbursement.OrganizationID != orgID {
		return nil, ErrWrongOrganization
	}
	return reimbursement, nil
}
