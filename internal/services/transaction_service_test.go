package services

import (
	"testing"
	"time"

	"vereinsbudget/internal/models"
	"vereinsbudget/internal/repositories"
	"vereinsbudget/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

type TransactionServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	txnRepo      *repository_mocks.MockTransactionRepositoryInterface
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	projectRepo  *repository_mocks.MockProjectRepositoryInterface
	donorRepo    *repository_mocks.MockDonorRepositoryInterface
	service      TransactionServiceInterface
	orgID        uuid.UUID
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.txnRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.projectRepo = repository_mocks.NewMockProjectRepositoryInterface(s.ctrl)
	s.donorRepo = repository_mocks.NewMockDonorRepositoryInterface(s.ctrl)
	s.service = NewTransactionService(s.txnRepo, s.categoryRepo, s.projectRepo, s.donorRepo, NewNoopMetrics(), newTestLogger())
	s.orgID = uuid.New()
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionServiceTestSuite) newTransaction() *models.Transaction {
	return &models.Transaction{
		ID:             uuid.New(),
		OrganizationID: s.orgID,
		BookedAt:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.RequireFromString("-25.00"),
		Status:         models.TransactionStatusProcessed,
		Description:    "Platzmiete",
	}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Manual() {
	s.txnRepo.EXPECT().Create(gomock.Any()).Return(nil)

	txn, err := s.service.CreateTransaction(s.newTransaction())
	s.Require().NoError(err)
	s.NotNil(txn)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_UnknownCategory() {
	categoryID := uuid.New()
	txn := s.newTransaction()
	txn.CategoryID = &categoryID

	s.categoryRepo.EXPECT().GetByID(categoryID).Return(nil, repositories.ErrCategoryNotFound)

	_, err := s.service.CreateTransaction(txn)
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_ForeignProject() {
	projectID := uuid.New()
	txn := s.newTransaction()
	txn.ProjectID = &projectID

	s.projectRepo.EXPECT().GetByID(projectID).Return(&models.Project{
		ID:             projectID,
		OrganizationID: uuid.New(),
	}, nil)

	_, err := s.service.CreateTransaction(txn)
	s.ErrorIs(err, ErrWrongOrganization)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_WrongOrganization() {
	txn := s.newTransaction()
	txn.OrganizationID = uuid.New()

	s.txnRepo.EXPECT().GetByID(txn.ID).Return(txn, nil)

	_, err := s.service.GetTransaction(s.orgID, txn.ID)
	s.ErrorIs(err, ErrWrongOrganization)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_EditableRow() {
	existing := s.newTransaction()

	updated := *existing
	updated.Description = "Platzmiete Maerz"

	s.txnRepo.EXPECT().GetByID(existing.ID).Return(existing, nil)
	s.txnRepo.EXPECT().Update(gomock.Any()).Return(nil)
	s.txnRepo.EXPECT().GetByID(existing.ID).Return(&updated, nil)

	result, err := s.service.UpdateTransaction(s.orgID, &updated)
	s.Require().NoError(err)
	s.Equal("Platzmiete Maerz", result.Description)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_ImportedAmountImmutable() {
	importID := "tx-001"
	existing := s.newTransaction()
	existing.ImportedTransactionID = &importID
	existing.ImportSource = "moss"

	updated := *existing
	updated.Amount = decimal.RequireFromString("-30.00")

	s.txnRepo.EXPECT().GetByID(existing.ID).Return(existing, nil)

	_, err := s.service.UpdateTransaction(s.orgID, &updated)
	s.ErrorIs(err, ErrImportedImmutable)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_ImportedDateImmutable() {
	importID := "tx-001"
	existing := s.newTransaction()
	existing.ImportedTransactionID = &importID
	existing.ImportSource = "moss"

	updated := *existing
	updated.BookedAt = existing.BookedAt.AddDate(0, 0, 1)

	s.txnRepo.EXPECT().GetByID(existing.ID).Return(existing, nil)

	_, err := s.service.UpdateTransaction(s.orgID, &updated)
	s.ErrorIs(err, ErrImportedImmutable)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_ImportedDescriptionEditable() {
	importID := "tx-001"
	existing := s.newTransaction()
	existing.ImportedTransactionID = &importID
	existing.ImportSource = "moss"

	updated := *existing
	updated.Description = "Buero Material"

	s.txnRepo.EXPECT().GetByID(existing.ID).Return(existing, nil)
	s.txnRepo.EXPECT().Update(gomock.Any()).Return(nil)
	s.txnRepo.EXPECT().GetByID(existing.ID).Return(&updated, nil)

	result, err := s.service.UpdateTransaction(s.orgID, &updated)
	s.Require().NoError(err)
	s.Equal("Buero Material", result.Description)
}

func (s *TransactionServiceTestSuite) TestCategorize() {
	existing := s.newTransaction()
	categoryID := uuid.New()

	s.txnRepo.EXPECT().GetByID(existing.ID).Return(existing, nil)
	s.categoryRepo.EXPECT().GetByID(categoryID).Return(&models.Category{
		ID:             categoryID,
		OrganizationID: s.orgID,
	}, nil)
	s.txnRepo.EXPECT().Update(gomock.Any()).Return(nil)

	result, err := s.service.Categorize(s.orgID, existing.ID, &categoryID, nil, nil)
	s.Require().NoError(err)
	s.Require().NotNil(result.CategoryID)
	s.Equal(categoryID, *result.CategoryID)
	s.Nil(result.ProjectID)
}

func (s *TransactionServiceTestSuite) TestMarkProcessed() {
	existing := s.newTransaction()
	existing.Status = models.TransactionStatusExpected

	s.txnRepo.EXPECT().GetByID(existing.ID).Return(existing, nil)
	s.txnRepo.EXPECT().UpdateStatus(existing.ID, models.TransactionStatusProcessed).Return(nil)

	s.NoError(s.service.MarkProcessed(s.orgID, existing.ID))
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	id := uuid.New()
	s.txnRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrTransactionNotFound)

	err := s.service.DeleteTransaction(s.orgID, id)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionServiceTestSuite) TestGetCategorySummary_InvalidRange() {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.service.GetCategorySummary(s.orgID, at, at)
	s.ErrorIs(err, ErrInvalidDateRange)
}
