package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vereinsbudget/internal/dto"
	"vereinsbudget/internal/models"
	"vereinsbudget/internal/services"
	"vereinsbudget/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

type TransactionHandlerSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	transactionService *service_mocks.MockTransactionServiceInterface
	handler            *TransactionHandler
	e                  *echo.Echo
	orgID              uuid.UUID
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.transactionService)
	s.e = echo.New()
	s.e.Validator = &CustomValidator{validator: validator.New()}
	s.orgID = uuid.New()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerSuite) authedContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", uuid.New())
	c.Set("organization_id", s.orgID)
	return c, rec
}

func (s *TransactionHandlerSuite) sampleTransaction() *models.Transaction {
	return &models.Transaction{
		ID:             uuid.New(),
		OrganizationID: s.orgID,
		BookedAt:       time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewFromFloat(-120.50),
		Status:         models.TransactionStatusProcessed,
		Description:    gofakeit.Sentence(4),
		Counterparty:   gofakeit.Company(),
	}
}

func (s *TransactionHandlerSuite) TestCreate() {
	created := s.sampleTransaction()

	s.transactionService.EXPECT().
		CreateTransaction(gomock.Any()).
		DoAndReturn(func(txn *models.Transaction) (*models.Transaction, error) {
			s.Equal(s.orgID, txn.OrganizationID)
			s.True(txn.Amount.Equal(decimal.NewFromFloat(-120.50)))
			s.Equal(models.TransactionStatusProcessed, txn.Status)
			return created, nil
		})

	c, rec := s.authedContext(http.MethodPost, "/api/v1/transactions", dto.CreateTransactionRequest{
		BookedAt:     time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC),
		Amount:       "-120.50",
		Description:  "Saalmiete April",
		Counterparty: "Gemeinde",
	})

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(created.ID, response.ID)
	s.Equal("-120.50", response.Amount)
}

func (s *TransactionHandlerSuite) TestCreateInvalidAmount() {
	c, rec := s.authedContext(http.MethodPost, "/api/v1/transactions", dto.CreateTransactionRequest{
		BookedAt: time.Now(),
		Amount:   "not-a-number",
	})

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_003", response.Error.Code)
}

func (s *TransactionHandlerSuite) TestGet() {
	txn := s.sampleTransaction()

	s.transactionService.EXPECT().
		GetTransaction(s.orgID, txn.ID).
		Return(txn, nil)

	c, rec := s.authedContext(http.MethodGet, "/api/v1/transactions/"+txn.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(txn.ID.String())

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestGetNotFound() {
	id := uuid.New()

	s.transactionService.EXPECT().
		GetTransaction(s.orgID, id).
		Return(nil, services.ErrTransactionNotFound)

	c, rec := s.authedContext(http.MethodGet, "/api/v1/transactions/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("TRANSACTION_001", response.Error.Code)
}

func (s *TransactionHandlerSuite) TestGetHidesForeignOrganization() {
	id := uuid.New()

	s.transactionService.EXPECT().
		GetTransaction(s.orgID, id).
		Return(nil, services.ErrWrongOrganization)

	c, rec := s.authedContext(http.MethodGet, "/api/v1/transactions/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *TransactionHandlerSuite) TestList() {
	transactions := []models.Transaction{*s.sampleTransaction(), *s.sampleTransaction()}

	s.transactionService.EXPECT().
		ListTransactions(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(s.orgID, filters.OrganizationID)
			s.Equal("processed", filters.Status)
			s.Equal(50, filters.Limit)
			return transactions, 2, nil
		})

	c, rec := s.authedContext(http.MethodGet, "/api/v1/transactions?status=processed", nil)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Transactions, 2)
	s.Equal(int64(2), response.Pagination.Total)
}

func (s *TransactionHandlerSuite) TestUpdateImportedImmutable() {
	id := uuid.New()

	s.transactionService.EXPECT().
		UpdateTransaction(s.orgID, gomock.Any()).
		Return(nil, services.ErrImportedImmutable)

	c, rec := s.authedContext(http.MethodPut, "/api/v1/transactions/"+id.String(), dto.UpdateTransactionRequest{
		BookedAt: time.Now(),
		Amount:   "99.99",
	})
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusConflict, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("TRANSACTION_003", response.Error.Code)
}

func (s *TransactionHandlerSuite) TestCategorize() {
	txn := s.sampleTransaction()
	categoryID := uuid.New()
	txn.CategoryID = &categoryID

	s.transactionService.EXPECT().
		Categorize(s.orgID, txn.ID, &categoryID, nil, nil).
		Return(txn, nil)

	c, rec := s.authedContext(http.MethodPut, "/api/v1/transactions/"+txn.ID.String()+"/labels", dto.CategorizeTransactionRequest{
		CategoryID: &categoryID,
	})
	c.SetParamNames("id")
	c.SetParamValues(txn.ID.String())

	s.NoError(s.handler.Categorize(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestCategorizeUnknownCategory() {
	id := uuid.New()
	categoryID := uuid.New()

	s.transactionService.EXPECT().
		Categorize(s.orgID, id, &categoryID, nil, nil).
		Return(nil, services.ErrCategoryNotFound)

	c, rec := s.authedContext(http.MethodPut, "/api/v1/transactions/"+id.String()+"/labels", dto.CategorizeTransactionRequest{
		CategoryID: &categoryID,
	})
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Categorize(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CATEGORY_001", response.Error.Code)
}

func (s *TransactionHandlerSuite) TestMarkProcessed() {
	id := uuid.New()

	s.transactionService.EXPECT().
		MarkProcessed(s.orgID, id).
		Return(nil)

	c, rec := s.authedContext(http.MethodPost, "/api/v1/transactions/"+id.String()+"/process", nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.MarkProcessed(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestDelete() {
	id := uuid.New()

	s.transactionService.EXPECT().
		DeleteTransaction(s.orgID, id).
		Return(nil)

	c, rec := s.authedContext(http.MethodDelete, "/api/v1/transactions/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransactionHandlerSuite) TestCategorySummary() {
	categoryID := uuid.New()
	summary := []models.CategorySummary{{
		CategoryID:       &categoryID,
		CategoryName:     "Spenden",
		TransactionCount: 3,
		TotalAmount:      decimal.NewFromFloat(450),
	}}

	s.transactionService.EXPECT().
		GetCategorySummary(s.orgID, gomock.Any(), gomock.Any()).
		Return(summary, nil)

	c, rec := s.authedContext(http.MethodGet, "/api/v1/transactions/summary/categories?startDate=2024-01-01&endDate=2024-12-31", nil)

	s.NoError(s.handler.CategorySummary(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestCategorySummaryBadDates() {
	c, rec := s.authedContext(http.MethodGet, "/api/v1/transactions/summary/categories?startDate=gestern&endDate=heute", nil)

	s.NoError(s.handler.CategorySummary(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_004", response.Error.Code)
}
