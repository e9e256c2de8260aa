package handlers

import (
	stderrors "errors"
	"net/http"

	"vereinsbudget/internal/dto"
	"vereinsbudget/internal/errors"
	"vereinsbudget/internal/services"

	"github.com/labstack/echo/v4"
)

// CashflowHandler serves the chart data endpoint
type CashflowHandler struct {
	cashflowService services.CashflowServiceInterface
}

// NewCashflowHandler creates a cashflow handler
func NewCashflowHandler(cashflowService services.CashflowServiceInterface) *CashflowHandler {
	return &CashflowHandler{
		cashflowService: cashflowService,
	}
}

// GetCashflow returns the bucketed series plus axis scaling for a range
func (h *CashflowHandler) GetCashflow(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	result, err := h.cashflowService.GetCashflow(orgID, start, end)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidDateRange) {
			return SendError(c, errors.ValidationInvalidDate)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CashflowResponse{
		Points: result.Points,
		Axis:   result.Axis,
	})
}
