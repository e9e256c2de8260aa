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

// CategoryHandler handles category management endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create adds a category to the organization
func (h *CategoryHandler) Create(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	created, err := h.categoryService.CreateCategory(&models.Category{
		OrganizationID: orgID,
		Name:           req.Name,
		Kind:           req.Kind,
	})
	if err != nil {
		return h.mapCategoryError(c, err)
	}
	return c.JSON(http.StatusCreated, toCategoryResponse(created))
}

// Get fetches a single category
func (h *CategoryHandler) Get(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category id"))
	}

	category, err := h.categoryService.GetCategory(orgID, id)
	if err != nil {
		return h.mapCategoryError(c, err)
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// List returns all categories of the organization
func (h *CategoryHandler) List(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categories, err := h.categoryService.ListCategories(orgID)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListCategoriesResponse{
		Categories: make([]dto.CategoryResponse, 0, len(categories)),
	}
	for i := range categories {
		response.Categories = append(response.Categories, toCategoryResponse(&categories[i]))
	}
	return c.JSON(http.StatusOK, response)
}

// Update renames or re-kinds a category
func (h *CategoryHandler) Update(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category id"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	updated, err := h.categoryService.UpdateCategory(orgID, &models.Category{
		ID:             id,
		OrganizationID: orgID,
		Name:           req.Name,
		Kind:           req.Kind,
	})
	if err != nil {
		return h.mapCategoryError(c, err)
	}
	return c.JSON(http.StatusOK, toCategoryResponse(updated))
}

// Delete removes a category, detaching it from transactions
func (h *CategoryHandler) Delete(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category id"))
	}

	if err := h.categoryService.DeleteCategory(orgID, id); err != nil {
		return h.mapCategoryError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CategoryHandler) mapCategoryError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrCategoryNotFound), stderrors.Is(err, services.ErrWrongOrganization):
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, models.ErrInvalidCategoryKind), stderrors.Is(err, models.ErrMissingOrganization):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

func toCategoryResponse(category *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Kind:      category.Kind,
		CreatedAt: category.CreatedAt,
	}
}
