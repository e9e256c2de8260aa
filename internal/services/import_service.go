package services

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"vereinsbudget/internal/bankimport"
	"vereinsbudget/internal/models"
	"vereinsbudget/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyStatement      = errors.New("statement contains no rows")
	ErrUnknownSource       = errors.New("unknown import source")
	ErrTooManyRows         = errors.New("statement exceeds the row limit")
	ErrOrganizationMissing = errors.New("organization not found")
)

// importService implements ImportServiceInterface
type importService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	orgRepo         repositories.OrganizationRepositoryInterface
	maxRows         int
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewImportService creates a bank-statement import service
func NewImportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	orgRepo repositories.OrganizationRepositoryInterface,
	maxRows int,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ImportServiceInterface {
	if maxRows <= 0 {
		maxRows = 5000
	}
	return &importService{
		transactionRepo: transactionRepo,
		orgRepo:         orgRepo,
		maxRows:         maxRows,
		metrics:         metrics,
		logger:          logger,
	}
}

// ImportStatement parses a bank-statement CSV, skips rows already imported
// for this organization, and persists the remainder in one batch.
func (s *importService) ImportStatement(orgID uuid.UUID, source bankimport.Source, reader io.Reader) (*ImportResult, error) {
	start := time.Now()

	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, ErrOrganizationMissing
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	mapped, err := s.parseStatement(source, reader)
	if err != nil {
		s.metrics.RecordImportError(string(source), importErrorReason(err))
		return nil, err
	}

	existingIDs, err := s.transactionRepo.ListImportedIDs(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing import IDs: %w", err)
	}

	fresh, skipped := bankimport.FilterNew(mapped, bankimport.NewIDSet(existingIDs))

	transactions := make([]models.Transaction, 0, len(fresh))
	for _, data := range fresh {
		transactions = append(transactions, s.toTransaction(orgID, source, data))
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		s.metrics.RecordImportError(string(source), "persist")
		return nil, fmt.Errorf("failed to persist imported transactions: %w", err)
	}

	s.metrics.RecordImport(string(source), len(transactions), skipped, time.Since(start))
	s.logger.Info("statement imported",
		"organization_id", orgID,
		"source", source,
		"imported", len(transactions),
		"skipped", skipped,
	)

	return &ImportResult{
		Imported:     len(transactions),
		Skipped:      skipped,
		Transactions: transactions,
	}, nil
}

// PreviewStatement parses a statement without persisting anything.
func (s *importService) PreviewStatement(source bankimport.Source, reader io.Reader) ([]bankimport.TransactionData, error) {
	return s.parseStatement(source, reader)
}

func (s *importService) parseStatement(source bankimport.Source, reader io.Reader) ([]bankimport.TransactionData, error) {
	if !bankimport.IsValidSource(string(source)) {
		return nil, ErrUnknownSource
	}

	rows, err := bankimport.ReadRows(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyStatement
	}
	if len(rows) > s.maxRows {
		return nil, ErrTooManyRows
	}

	mapped := make([]bankimport.TransactionData, 0, len(rows))
	for _, row := range rows {
		data, err := bankimport.MapRow(row, source)
		if err != nil {
			return nil, err
		}
		mapped = append(mapped, data)
	}
	return mapped, nil
}

func (s *importService) toTransaction(orgID uuid.UUID, source bankimport.Source, data bankimport.TransactionData) models.Transaction {
	importID := data.ImportedTransactionID
	return models.Transaction{
		OrganizationID:        orgID,
		BookedAt:              time.UnixMilli(data.Date).UTC(),
		Amount:                decimal.NewFromFloat(data.Amount).Round(2),
		Status:                models.TransactionStatusProcessed,
		Description:           data.Description,
		Counterparty:          data.Counterparty,
		AccountName:           data.AccountName,
		ImportedTransactionID: &importID,
		ImportSource:          string(source),
	}
}

func importErrorReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownSource):
		return "unknown_source"
	case errors.Is(err, ErrEmptyStatement):
		return "empty"
	case errors.Is(err, ErrTooManyRows):
		return "too_many_rows"
	default:
		return "parse"
	}
}
