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

// AllowanceHandler handles volunteer allowance endpoints
type AllowanceHandler struct {
	allowanceService services.AllowanceServiceInterface
}

// NewAllowanceHandler creates a new allowance handler
func NewAllowanceHandler(allowanceService services.AllowanceServiceInterface) *AllowanceHandler {
	return &AllowanceHandler{
		allowanceService: allowanceService,
	}
}

// Grant records an allowance payout for a volunteer. Admin only.
func (h *AllowanceHandler) Grant(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	if !getIsAdminFromContext(c) {
		return SendError(c, errors.AuthInsufficientPermission)
	}

	var req dto.GrantAllowanceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.AllowanceInvalidAmount)
	}

	granted, err := h.allowanceService.GrantAllowance(&models.Allowance{
		OrganizationID: orgID,
		UserID:         req.UserID,
		Year:           req.Year,
		Amount:         amount,
		Note:           req.Note,
	})
	if err != nil {
		return h.mapAllowanceError(c, err)
	}
	return c.JSON(http.StatusCreated, toAllowanceResponse(granted))
}

// Remaining reports the unused part of the annual cap for a user
func (h *AllowanceHandler) Remaining(c echo.Context) error {
	if _, err := getOrganizationIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user id"))
	}
	year := getIntParam(c, "year", time.Now().UTC().Year())

	remaining, err := h.allowanceService.RemainingBudget(userID, year)
	if err != nil {
		return h.mapAllowanceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RemainingAllowanceResponse{
		UserID:    userID,
		Year:      year,
		Remaining: remaining.StringFixed(2),
	})
}

// List returns the organization's allowance payouts
func (h *AllowanceHandler) List(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	year := getIntParam(c, "year", 0)
	offset, limit := clampPagination(getIntParam(c, "offset", 0), getIntParam(c, "limit", 50))

	allowances, total, err := h.allowanceService.ListByOrganization(orgID, year, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListAllowancesResponse{
		Allowances: make([]dto.AllowanceResponse, 0, len(allowances)),
		Pagination: dto.PaginationInfo{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	}
	for i := range allowances {
		response.Allowances = append(response.Allowances, toAllowanceResponse(&allowances[i]))
	}
	return c.JSON(http.StatusOK, response)
}

// Revoke deletes a mistakenly recorded payout. Admin only.
func (h *AllowanceHandler) Revoke(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	if !getIsAdminFromContext(c) {
		return SendError(c, errors.AuthInsufficientPermission)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid allowance id"))
	}

	if err := h.allowanceService.RevokeAllowance(orgID, id); err != nil {
		return h.mapAllowanceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AllowanceHandler) mapAllowanceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrAllowanceCapExceeded):
		return SendError(c, errors.AllowanceCapExceeded)
	case stderrors.Is(err, services.ErrAllowanceNotFound), stderrors.Is(err, services.ErrWrongOrganization):
		return SendError(c, errors.AllowanceNotFound)
	case stderrors.Is(err, services.ErrUserNotFound):
		return SendError(c, errors.UserNotFound)
	case stderrors.Is(err, models.ErrMissingOrganization):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

func toAllowanceResponse(allowance *models.Allowance) dto.AllowanceResponse {
	return dto.AllowanceResponse{
		ID:        allowance.ID,
		UserID:    allowance.UserID,
		Year:      allowance.Year,
		Amount:    allowance.Amount.StringFixed(2),
		Note:      allowance.Note,
		CreatedAt: allowance.CreatedAt,
	}
}
