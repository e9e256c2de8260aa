package handlers

import (
	stderrors "errors"
	"net/http"

	"vereinsbudget/internal/dto"
	"vereinsbudget/internal/errors"
	"vereinsbudget/internal/models"
	"vereinsbudget/internal/services"

	"github.com/labstack/echo/v4"
)

// DonorHandler handles donor management endpoints
type DonorHandler struct {
	donorService services.DonorServiceInterface
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(donorService services.DonorServiceInterface) *DonorHandler {
	return &DonorHandler{
		donorService: donorService,
	}
}

// Create registers a donor
func (h *DonorHandler) Create(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateDonorRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	created, err := h.donorService.CreateDonor(&models.Donor{
		OrganizationID: orgID,
		Name:           req.Name,
		Email:          req.Email,
		Address:        req.Address,
		Notes:          req.Note,
	})
	if err != nil {
		return h.mapDonorError(c, err)
	}
	return c.JSON(http.StatusCreated, toDonorResponse(created))
}

// Get fetches a single donor
func (h *DonorHandler) Get(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid donor id"))
	}

	donor, err := h.donorService.GetDonor(orgID, id)
	if err != nil {
		return h.mapDonorError(c, err)
	}
	return c.JSON(http.StatusOK, toDonorResponse(donor))
}

// List returns the organization's donors
func (h *DonorHandler) List(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset, limit := clampPagination(getIntParam(c, "offset", 0), getIntParam(c, "limit", 50))

	donors, total, err := h.donorService.ListDonors(orgID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListDonorsResponse{
		Donors: make([]dto.DonorResponse, 0, len(donors)),
		Pagination: dto.PaginationInfo{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	}
	for i := range donors {
		response.Donors = append(response.Donors, toDonorResponse(&donors[i]))
	}
	return c.JSON(http.StatusOK, response)
}

// Update edits donor contact data
func (h *DonorHandler) Update(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid donor id"))
	}

	var req dto.UpdateDonorRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	updated, err := h.donorService.UpdateDonor(orgID, &models.Donor{
		ID:             id,
		OrganizationID: orgID,
		Name:           req.Name,
		Email:          req.Email,
		Address:        req.Address,
		Notes:          req.Note,
	})
	if err != nil {
		return h.mapDonorError(c, err)
	}
	return c.JSON(http.StatusOK, toDonorResponse(updated))
}

// Delete removes a donor, detaching them from transactions
func (h *DonorHandler) Delete(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid donor id"))
	}

	if err := h.donorService.DeleteDonor(orgID, id); err != nil {
		return h.mapDonorError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DonorHandler) mapDonorError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrDonorNotFound), stderrors.Is(err, services.ErrWrongOrganization):
		return SendError(c, errors.DonorNotFound)
	case stderrors.Is(err, models.ErrMissingOrganization):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

func toDonorResponse(donor *models.Donor) dto.DonorResponse {
	return dto.DonorResponse{
		ID:        donor.ID,
		Name:      donor.Name,
		Email:     donor.Email,
		Address:   donor.Address,
		Note:      donor.Notes,
		CreatedAt: donor.CreatedAt,
		UpdatedAt: donor.UpdatedAt,
	}
}
