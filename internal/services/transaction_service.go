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
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrWrongOrganization   = errors.New("record belongs to a different organization")
	ErrImportedImmutable   = errors.New("imported transactions cannot change amount or date")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrDonorNotFound       = errors.New("donor not found")
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	projectRepo     repositories.ProjectRepositoryInterface
	donorRepo       repositories.DonorRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	projectRepo repositories.ProjectRepositoryInterface,
	donorRepo repositories.DonorRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		projectRepo:     projectRepo,
		donorRepo:       donorRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateTransaction stores a manually entered transaction
func (s *transactionService) CreateTransaction(txn *models.Transaction) (*models.Transaction, error) {
	if err := txn.Validate(); err != nil {
		return nil, err
	}
	if err := s.verifyAssignments(txn.OrganizationID, txn.CategoryID, txn.ProjectID, txn.DonorID); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(txn); err != nil {
		return nil, err
	}

	s.metrics.RecordTransactionCreated("manual")
	s.logger.Info("transaction created",
		"transaction_id", txn.ID,
		"organization_id", txn.OrganizationID,
		"status", txn.Status,
	)
	return txn, nil
}

// GetTransaction fetches one transaction, scoped to the organization
func (s *transactionService) GetTransaction(orgID, id uuid.UUID) (*models.Transaction, error) {
	return s.getScoped(orgID, id)
}

// ListTransactions lists transactions matching the filters
func (s *transactionService) ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	return s.transactionRepo.GetWithFilters(filters)
}

// UpdateTransaction updates an editable transaction. Imported rows keep
// their booked amount and date so they stay reconcilable with the bank.
func (s *transactionService) UpdateTransaction(orgID uuid.UUID, txn *models.Transaction) (*models.Transaction, error) {
	existing, err := s.getScoped(orgID, txn.ID)
	if err != nil {
		return nil, err
	}

	if existing.IsImported() {
		if !existing.Amount.Equal(txn.Amount) || !existing.BookedAt.Equal(txn.BookedAt) {
			return nil, ErrImportedImmutable
		}
	}

	if err := s.verifyAssignments(orgID, txn.CategoryID, txn.ProjectID, txn.DonorID); err != nil {
		return nil, err
	}

	txn.OrganizationID = existing.OrganizationID
	if err := s.transactionRepo.Update(txn); err != nil {
		return nil, err
	}
	return s.transactionRepo.GetByID(txn.ID)
}

// Categorize assigns category, project and donor labels to a transaction
func (s *transactionService) Categorize(orgID, txnID uuid.UUID, categoryID, projectID, donorID *uuid.UUID) (*models.Transaction, error) {
	txn, err := s.getScoped(orgID, txnID)
	if err != nil {
		return nil, err
	}

	if err := s.verifyAssignments(orgID, categoryID, projectID, donorID); err != nil {
		return nil, err
	}

	txn.CategoryID = categoryID
	txn.ProjectID = projectID
	txn.DonorID = donorID
	if err := s.transactionRepo.Update(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// MarkProcessed settles an expected transaction
func (s *transactionService) MarkProcessed(orgID, txnID uuid.UUID) error {
	if _, err := s.getScoped(orgID, txnID); err != nil {
		return err
	}
	return s.transactionRepo.UpdateStatus(txnID, models.TransactionStatusProcessed)
}

// DeleteTransaction removes a transaction
func (s *transactionService) DeleteTransaction(orgID, id uuid.UUID) error {
	if _, err := s.getScoped(orgID, id); err != nil {
		return err
	}
	return s.transactionRepo.Delete(id)
}

// GetCategorySummary aggregates transactions per category in [start, end)
func (s *transactionService) GetCategorySummary(orgID uuid.UUID, start, end time.Time) ([]models.CategorySummary, error) {
	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}
	return s.transactionRepo.GetCategorySummary(orgID, start, end)
}

func (s *transactionService) getScoped(orgID, id uuid.UUID) (*models.Transaction, error) {
	txn, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	if txn.OrganizationID != orgID {
		return nil, ErrWrongOrganization
	}
	return txn, nil
}

// verifyAssignments checks that referenced category, project and donor exist
// and belong to the same organization.
func (s *transactionService) verifyAssignments(orgID uuid.UUID, categoryID, projectID, donorID *uuid.UUID) error {
	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(*categoryID)
		if err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("failed to verify category: %w", err)
		}
		if category.OrganizationID != orgID {
			return ErrWrongOrganization
		}
	}
	if projectID != nil {
		project, err := s.projectRepo.GetByID(*projectID)
		if err != nil {
			if errors.Is(err, repositories.ErrProjectNotFound) {
				return ErrProjectNotFound
			}
			return fmt.Errorf("failed to verify project: %w", err)
		}
		if project.OrganizationID != orgID {
			return ErrWrongOrganization
		}
	}
	if donorID != nil {
		donor, err := s.donorRepo.GetByID(*donorID)
		if err != nil {
			if errors.Is(err, repositories.ErrDonorNotFound) {
				return ErrDonorNotFound
			}
			return fmt.Errorf("failed to verify donor: %w", err)
		}
		if donor.OrganizationID != orgID {
			return ErrWrongOrganization
		}
	}
	return nil
}
