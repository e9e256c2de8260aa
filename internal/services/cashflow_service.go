package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vereinsbudget/internal/cashflow"
	"vereinsbudget/internal/models"
	"vereinsbudget/internal/repositories"

	"github.com/google/uuid"
)

var ErrInvalidDateRange = errors.New("range end must be after range start")

// cashflowService implements CashflowServiceInterface
type cashflowService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewCashflowService creates a cashflow chart service
func NewCashflowService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CashflowServiceInterface {
	return &cashflowService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetCashflow builds the bucketed chart series for [rangeStart, rangeEnd).
// The opening balance counts settled transactions booked before the range;
// within the range every status moves the running balance.
func (s *cashflowService) GetCashflow(orgID uuid.UUID, rangeStart, rangeEnd time.Time) (*CashflowResult, error) {
	start := time.Now()

	if !rangeEnd.After(rangeStart) {
		return nil, ErrInvalidDateRange
	}

	startBalance, err := s.transactionRepo.SumBefore(orgID, rangeStart, models.TransactionStatusProcessed)
	if err != nil {
		return nil, fmt.Errorf("failed to compute opening balance: %w", err)
	}

	records, err := s.transactionRepo.GetByDateRange(orgID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	transactions := make([]cashflow.Transaction, 0, len(records))
	for _, record := range records {
		transactions = append(transactions, cashflow.Transaction{
			Date:   record.BookedAt,
			Amount: record.Amount.InexactFloat64(),
			Status: cashflow.Status(record.Status),
		})
	}

	points := cashflow.Generate(transactions, startBalance.InexactFloat64(), rangeStart, rangeEnd)
	axis := cashflow.CalculateAxisConfig(points, rangeStart, rangeEnd)

	s.metrics.RecordCashflowRequest(bucketLabel(rangeStart, rangeEnd), time.Since(start))
	s.logger.Debug("cashflow generated",
		"organization_id", orgID,
		"points", len(points),
		"transactions", len(records),
	)

	return &CashflowResult{
		Points: points,
		Axis:   axis,
	}, nil
}

// bucketLabel names the bucket granularity for metrics, mirroring the
// period selection in the cashflow package.
func bucketLabel(rangeStart, rangeEnd time.Time) string {
	days := int(rangeEnd.Sub(rangeStart).Hours() / 24)
	switch {
	case days >= 335:
		return "month"
	case days > 90:
		return "week"
	default:
		return "day"
	}
}
