package handlers

import (
	stderrors "errors"
	"net/http"

	"vereinsbudget/internal/dto"
	"vereinsbudget/internal/errors"
	"vereinsbudget/internal/models"
	"vereinsbudget/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ReimbursementHandler handles the expense claim workflow
type ReimbursementHandler struct {
	reimbursementService services.ReimbursementServiceInterface
}

// NewReimbursementHandler creates a new reimbursement handler
func NewReimbursementHandler(reimbursementService services.ReimbursementServiceInterface) *ReimbursementHandler {
	return &ReimbursementHandler{
		reimbursementService: reimbursementService,
	}
}

// Submit files an expense claim for the authenticated member
func (h *ReimbursementHandler) Submit(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SubmitReimbursementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ReimbursementInvalidAmount)
	}

	created, err := h.reimbursementService.Submit(&models.Reimbursement{
		OrganizationID: orgID,
		UserID:         userID,
		ProjectID:      req.ProjectID,
		Amount:         amount,
		Description:    req.Description,
	})
	if err != nil {
		return h.mapReimbursementError(c, err)
	}
	return c.JSON(http.StatusCreated, toReimbursementResponse(created))
}

// Get fetches a single claim
func (h *ReimbursementHandler) Get(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid reimbursement id"))
	}

	reimbursement, err := h.reimbursementService.Get(orgID, id)
	if err != nil {
		return h.mapReimbursementError(c, err)
	}
	return c.JSON(http.StatusOK, toReimbursementResponse(reimbursement))
}

// List returns the organization's claims, optionally filtered by status.
// Non-admin members only see their own claims.
func (h *ReimbursementHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	status := c.QueryParam("status")
	offset, limit := clampPagination(getIntParam(c, "offset", 0), getIntParam(c, "limit", 50))

	var (
		reimbursements []models.Reimbursement
		total          int64
	)
	if getIsAdminFromContext(c) {
		reimbursements, total, err = h.reimbursementService.List(orgID, status, offset, limit)
	} else {
		reimbursements, total, err = h.reimbursementService.ListForUser(userID, offset, limit)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListReimbursementsResponse{
		Reimbursements: make([]dto.ReimbursementResponse, 0, len(reimbursements)),
		Pagination: dto.PaginationInfo{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	}
	for i := range reimbursements {
		response.Reimbursements = append(response.Reimbursements, toReimbursementResponse(&reimbursements[i]))
	}
	return c.JSON(http.StatusOK, response)
}

// Approve accepts a submitted claim. Admin only.
func (h *ReimbursementHandler) Approve(c echo.Context) error {
	return h.decide(c, h.reimbursementService.Approve)
}

// Reject declines a submitted claim. Admin only.
func (h *ReimbursementHandler) Reject(c echo.Context) error {
	return h.decide(c, h.reimbursementService.Reject)
}

func (h *ReimbursementHandler) decide(c echo.Context, apply func(orgID, id, decidedBy uuid.UUID, note string) (*models.Reimbursement, error)) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	if !getIsAdminFromContext(c) {
		return SendError(c, errors.AuthInsufficientPermission)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid reimbursement id"))
	}

	var req dto.DecideReimbursementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	decided, err := apply(orgID, id, userID, req.Note)
	if err != nil {
		return h.mapReimbursementError(c, err)
	}
	return c.JSON(http.StatusOK, toReimbursementResponse(decided))
}

// MarkPaid books the payout transaction for an approved claim. Admin only.
func (h *ReimbursementHandler) MarkPaid(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	if !getIsAdminFromContext(c) {
		return SendError(c, errors.AuthInsufficientPermission)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid reimbursement id"))
	}

	paid, err := h.reimbursementService.MarkPaid(orgID, id)
	if err != nil {
		return h.mapReimbursementError(c, err)
	}
	return c.JSON(http.StatusOK, toReimbursementResponse(paid))
}

func (h *ReimbursementHandler) mapReimbursementError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrReimbursementNotFound), stderrors.Is(err, services.ErrWrongOrganization):
		return SendError(c, errors.ReimbursementNotFound)
	case stderrors.Is(err, services.ErrInvalidTransition):
		return SendError(c, errors.ReimbursementInvalidTransition)
	case stderrors.Is(err, services.ErrProjectNotFound):
		return SendError(c, errors.ProjectNotFound)
	case stderrors.Is(err, models.ErrInvalidReimbursementAmount):
		return SendError(c, errors.ReimbursementInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidReimbursementStatus), stderrors.Is(err, models.ErrMissingOrganization):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

func toReimbursementResponse(reimbursement *models.Reimbursement) dto.ReimbursementResponse {
	return dto.ReimbursementResponse{
		ID:            reimbursement.ID,
		UserID:        reimbursement.UserID,
		ProjectID:     reimbursement.ProjectID,
		Amount:        reimbursement.Amount.StringFixed(2),
		Description:   reimbursement.Description,
		Status:        reimbursement.Status,
		DecisionNote:  reimbursement.DecisionNote,
		DecidedBy:     reimbursement.DecidedBy,
		DecidedAt:     reimbursement.DecidedAt,
		PaidAt:        reimbursement.PaidAt,
		TransactionID: reimbursement.TransactionID,
		CreatedAt:     reimbursement.CreatedAt,
	}
}
