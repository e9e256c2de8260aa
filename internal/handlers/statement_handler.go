package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"vereinsbudget/internal/bankimport"
	"vereinsbudget/internal/dto"
	apierrors "vereinsbudget/internal/errors"
	"vereinsbudget/internal/services"

	"github.com/labstack/echo/v4"
)

// StatementHandler handles bank-statement upload endpoints
type StatementHandler struct {
	importService  services.ImportServiceInterface
	maxUploadBytes int64
}

// NewStatementHandler creates a statement import handler
func NewStatementHandler(importService services.ImportServiceInterface, maxUploadBytes int64) *StatementHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 5 << 20
	}
	return &StatementHandler{
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
	}
}

// Import persists the new rows of an uploaded CSV statement
func (h *StatementHandler) Import(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	source, reader, ok := h.openStatement(c)
	if !ok {
		return nil
	}
	defer reader.Close()

	result, err := h.importService.ImportStatement(orgID, source, io.LimitReader(reader, h.maxUploadBytes))
	if err != nil {
		return h.mapImportError(c, err)
	}

	response := dto.ImportStatementResponse{
		Source:       string(source),
		Imported:     result.Imported,
		Skipped:      result.Skipped,
		Transactions: make([]dto.TransactionResponse, 0, len(result.Transactions)),
	}
	for i := range result.Transactions {
		response.Transactions = append(response.Transactions, toTransactionResponse(&result.Transactions[i]))
	}

	return c.JSON(http.StatusCreated, response)
}

// Preview parses an uploaded statement without persisting anything
func (h *StatementHandler) Preview(c echo.Context) error {
	if _, err := getOrganizationIDFromContext(c); err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	source, reader, ok := h.openStatement(c)
	if !ok {
		return nil
	}
	defer reader.Close()

	rows, err := h.importService.PreviewStatement(source, io.LimitReader(reader, h.maxUploadBytes))
	if err != nil {
		return h.mapImportError(c, err)
	}

	response := dto.PreviewStatementResponse{
		Source: string(source),
		Rows:   make([]dto.PreviewRowResponse, 0, len(rows)),
	}
	for _, row := range rows {
		response.Rows = append(response.Rows, dto.PreviewRowResponse{
			Date:                  row.Date,
			Amount:                row.Amount,
			Description:           row.Description,
			Counterparty:          row.Counterparty,
			ImportedTransactionID: row.ImportedTransactionID,
			AccountName:           row.AccountName,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// openStatement pulls the source form value and the uploaded file out of the
// multipart request. When it returns false the error response has already
// been written and the caller must not touch the reader.
func (h *StatementHandler) openStatement(c echo.Context) (bankimport.Source, io.ReadCloser, bool) {
	source := bankimport.Source(strings.ToLower(strings.TrimSpace(c.FormValue("source"))))
	if !bankimport.IsValidSource(string(source)) {
		SendError(c, apierrors.ImportUnknownSource)
		return "", nil, false
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Statement file is required"))
		return "", nil, false
	}
	if fileHeader.Size > h.maxUploadBytes {
		SendError(c, apierrors.ImportFileTooLarge)
		return "", nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		SendSystemError(c, err)
		return "", nil, false
	}
	return source, file, true
}

func (h *StatementHandler) mapImportError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrUnknownSource):
		return SendError(c, apierrors.ImportUnknownSource)
	case errors.Is(err, services.ErrEmptyStatement):
		return SendError(c, apierrors.ImportEmptyFile)
	case errors.Is(err, services.ErrTooManyRows):
		return SendError(c, apierrors.ImportTooManyRows)
	case errors.Is(err, services.ErrOrganizationMissing):
		return SendError(c, apierrors.OrganizationNotFound)
	case strings.Contains(err.Error(), "failed to read statement"):
		return SendError(c, apierrors.ImportUnreadableCSV)
	default:
		return SendSystemError(c, err)
	}
}
