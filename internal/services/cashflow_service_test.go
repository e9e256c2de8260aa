package services

import (
	"errors"
	"testing"
	"time"

	"vereinsbudget/internal/models"
	"vereinsbudget/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestCashflowServiceSuite(t *testing.T) {
	suite.Run(t, new(CashflowServiceTestSuite))
}

type CashflowServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	txnRepo *repository_mocks.MockTransactionRepositoryInterface
	service CashflowServiceInterface
	orgID   uuid.UUID
}

func (s *CashflowServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.txnRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = NewCashflowService(s.txnRepo, NewNoopMetrics(), newTestLogger())
	s.orgID = uuid.New()
}

func (s *CashflowServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CashflowServiceTestSuite) TestGetCashflow_DailyBuckets() {
	rangeStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	s.txnRepo.EXPECT().
		SumBefore(s.orgID, rangeStart, models.TransactionStatusProcessed).
		Return(decimal.NewFromInt(100), nil)
	s.txnRepo.EXPECT().
		GetByDateRange(s.orgID, rangeStart, rangeEnd).
		Return([]models.Transaction{
			{
				BookedAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
				Amount:   decimal.NewFromInt(50),
				Status:   models.TransactionStatusProcessed,
			},
			{
				BookedAt: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
				Amount:   decimal.NewFromInt(-20),
				Status:   models.TransactionStatusExpected,
			},
		}, nil)

	result, err := s.service.GetCashflow(s.orgID, rangeStart, rangeEnd)
	s.Require().NoError(err)
	s.Require().Len(result.Points, 10)

	s.InDelta(100.0, result.Points[0].Balance, 0.001)
	s.InDelta(50.0, result.Points[1].ActualIncome, 0.001)
	s.InDelta(150.0, result.Points[2].Balance, 0.001)
	s.InDelta(-20.0, result.Points[4].ExpectedExpenses, 0.001)
	s.InDelta(130.0, result.Points[5].Balance, 0.001)

	s.GreaterOrEqual(result.Axis.MaxValue, 150.0)
	s.NotEmpty(result.Axis.Ticks)
}

func (s *CashflowServiceTestSuite) TestGetCashflow_MonthlyBucketsForYearRange() {
	rangeStart := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s.txnRepo.EXPECT().
		SumBefore(s.orgID, rangeStart, models.TransactionStatusProcessed).
		Return(decimal.Zero, nil)
	s.txnRepo.EXPECT().
		GetByDateRange(s.orgID, rangeStart, rangeEnd).
		Return(nil, nil)

	result, err := s.service.GetCashflow(s.orgID, rangeStart, rangeEnd)
	s.Require().NoError(err)
	s.Len(result.Points, 12)
	s.Equal("Jan 2023", result.Points[0].Date)
}

func (s *CashflowServiceTestSuite) TestGetCashflow_InvalidRange() {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.service.GetCashflow(s.orgID, at, at)
	s.ErrorIs(err, ErrInvalidDateRange)

	_, err = s.service.GetCashflow(s.orgID, at, at.AddDate(0, 0, -1))
	s.ErrorIs(err, ErrInvalidDateRange)
}

func (s *CashflowServiceTestSuite) TestGetCashflow_RepositoryError() {
	rangeStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := rangeStart.AddDate(0, 0, 7)

	s.txnRepo.EXPECT().
		SumBefore(s.orgID, rangeStart, models.TransactionStatusProcessed).
		Return(decimal.Zero, errors.New("connection reset"))

	_, err := s.service.GetCashflow(s.orgID, rangeStart, rangeEnd)
	s.Error(err)
}
