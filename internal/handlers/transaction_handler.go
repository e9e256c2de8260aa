package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"vereinsbudget/internal/dto"
	"vereinsbudget/internal/errors"
	"vereinsbudget/internal/models"
	"vereinsbudget/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Create records a manually entered transaction
func (h *TransactionHandler) Create(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid amount"))
	}

	txn := &models.Transaction{
		OrganizationID: orgID,
		BookedAt:       req.BookedAt,
		Amount:         amount,
		Status:         req.Status,
		Description:    req.Description,
		Counterparty:   req.Counterparty,
		CategoryID:     req.CategoryID,
		ProjectID:      req.ProjectID,
		DonorID:        req.DonorID,
	}
	if txn.Status == "" {
		txn.Status = models.TransactionStatusProcessed
	}

	created, err := h.transactionService.CreateTransaction(txn)
	if err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(created))
}

// Get fetches a single transaction
func (h *TransactionHandler) Get(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction id"))
	}

	txn, err := h.transactionService.GetTransaction(orgID, id)
	if err != nil {
		return h.mapTransactionError(c, err)
	}
	return c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// List returns a filtered, paginated transaction listing
func (h *TransactionHandler) List(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.TransactionQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	query.Offset, query.Limit = clampPagination(query.Offset, query.Limit)

	filters := models.TransactionFilters{
		OrganizationID: orgID,
		ProjectID:      query.ProjectID,
		CategoryID:     query.CategoryID,
		DonorID:        query.DonorID,
		StartDate:      query.StartDate,
		EndDate:        query.EndDate,
		Status:         query.Status,
		ImportSource:   query.ImportSource,
		Search:         query.Search,
		Offset:         query.Offset,
		Limit:          query.Limit,
	}

	transactions, total, err := h.transactionService.ListTransactions(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Pagination: dto.PaginationInfo{
			Offset: query.Offset,
			Limit:  query.Limit,
			Total:  total,
		},
	}
	for i := range transactions {
		response.Transactions = append(response.Transactions, toTransactionResponse(&transactions[i]))
	}
	return c.JSON(http.StatusOK, response)
}

// Update edits a transaction. Imported rows keep amount and date.
func (h *TransactionHandler) Update(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction id"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid amount"))
	}

	txn := &models.Transaction{
		ID:             id,
		OrganizationID: orgID,
		BookedAt:       req.BookedAt,
		Amount:         amount,
		Status:         req.Status,
		Description:    req.Description,
		Counterparty:   req.Counterparty,
		CategoryID:     req.CategoryID,
		ProjectID:      req.ProjectID,
		DonorID:        req.DonorID,
	}

	updated, err := h.transactionService.UpdateTransaction(orgID, txn)
	if err != nil {
		return h.mapTransactionError(c, err)
	}
	return c.JSON(http.StatusOK, toTransactionResponse(updated))
}

// Categorize assigns category, project and donor labels
func (h *TransactionHandler) Categorize(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction id"))
	}

	var req dto.CategorizeTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	txn, err := h.transactionService.Categorize(orgID, id, req.CategoryID, req.ProjectID, req.DonorID)
	if err != nil {
		return h.mapTransactionError(c, err)
	}
	return c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// MarkProcessed settles an expected transaction
func (h *TransactionHandler) MarkProcessed(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction id"))
	}

	if err := h.transactionService.MarkProcessed(orgID, id); err != nil {
		return h.mapTransactionError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Transaction marked as processed"})
}

// Delete removes a transaction
func (h *TransactionHandler) Delete(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction id"))
	}

	if err := h.transactionService.DeleteTransaction(orgID, id); err != nil {
		return h.mapTransactionError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CategorySummary aggregates transactions per category in a date range
func (h *TransactionHandler) CategorySummary(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	summary, err := h.transactionService.GetCategorySummary(orgID, start, end)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidDateRange) {
			return SendError(c, errors.ValidationInvalidDate)
		}
		return SendSystemError(c, err)
	}

	entries := make([]dto.CategorySummaryEntry, 0, len(summary))
	for i := range summary {
		entries = append(entries, dto.CategorySummaryEntry{
			CategoryID:       summary[i].CategoryID,
			CategoryName:     summary[i].CategoryName,
			TransactionCount: summary[i].TransactionCount,
			TotalAmount:      summary[i].TotalAmount.StringFixed(2),
		})
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: entries})
}

func (h *TransactionHandler) mapTransactionError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrTransactionNotFound), stderrors.Is(err, services.ErrWrongOrganization):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, services.ErrImportedImmutable):
		return SendError(c, errors.TransactionImportedImmutable)
	case stderrors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, services.ErrProjectNotFound):
		return SendError(c, errors.ProjectNotFound)
	case stderrors.Is(err, services.ErrDonorNotFound):
		return SendError(c, errors.DonorNotFound)
	case stderrors.Is(err, models.ErrInvalidTransactionStatus):
		return SendError(c, errors.TransactionInvalidStatus)
	case stderrors.Is(err, models.ErrMissingOrganization):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

// parseDateRange reads startDate/endDate query params as RFC 3339 dates
func parseDateRange(c echo.Context) (time.Time, time.Time, error) {
	start, err := parseDateParam(c.QueryParam("startDate"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateParam(c.QueryParam("endDate"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func toTransactionResponse(txn *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:                    txn.ID,
		BookedAt:              txn.BookedAt,
		Amount:                txn.Amount.StringFixed(2),
		Status:                txn.Status,
		Description:           txn.Description,
		Counterparty:          txn.Counterparty,
		AccountName:           txn.AccountName,
		CategoryID:            txn.CategoryID,
		ProjectID:             txn.ProjectID,
		DonorID:               txn.DonorID,
		ImportSource:          txn.ImportSource,
		ImportedTransactionID: txn.ImportedTransactionID,
		CreatedAt:             txn.CreatedAt,
		UpdatedAt:             txn.UpdatedAt,
	}
}
