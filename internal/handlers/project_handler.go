package handlers

import (
	stderrors "errors"
	"net/http"

	"vereinsbudget/internal/dto"
	"vereinsbudget/internal/errors"
	"vereinsbudget/internal/models"
	"vereinsbudget/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ProjectHandler handles project budget endpoints
type ProjectHandler struct {
	projectService services.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService services.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create creates a budgeted project
func (h *ProjectHandler) Create(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	project := &models.Project{
		OrganizationID: orgID,
		Name:           req.Name,
		Description:    req.Description,
		Status:         models.ProjectStatusActive,
	}
	if project.BudgetIncome, err = parseOptionalAmount(req.BudgetIncome); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget income"))
	}
	if project.BudgetExpenses, err = parseOptionalAmount(req.BudgetExpenses); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget expenses"))
	}

	created, err := h.projectService.CreateProject(project)
	if err != nil {
		return h.mapProjectError(c, err)
	}
	return c.JSON(http.StatusCreated, toProjectResponse(created))
}

// Get fetches a single project
func (h *ProjectHandler) Get(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid project id"))
	}

	project, err := h.projectService.GetProject(orgID, id)
	if err != nil {
		return h.mapProjectError(c, err)
	}
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

// GetWithTotals returns a project and its budget-versus-actuals figures
func (h *ProjectHandler) GetWithTotals(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid project id"))
	}

	project, totals, err := h.projectService.GetProjectWithTotals(orgID, id)
	if err != nil {
		return h.mapProjectError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ProjectWithTotalsResponse{
		Project: toProjectResponse(project),
		Totals: dto.ProjectTotalsResponse{
			ActualIncome:    totals.ActualIncome.StringFixed(2),
			ActualExpenses:  totals.ActualExpenses.StringFixed(2),
			ExpectedIncome:  totals.ExpectedIncome.StringFixed(2),
			ExpectedExpense: totals.ExpectedExpense.StringFixed(2),
		},
	})
}

// List returns the organization's projects
func (h *ProjectHandler) List(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	status := c.QueryParam("status")
	offset, limit := clampPagination(getIntParam(c, "offset", 0), getIntParam(c, "limit", 50))

	projects, total, err := h.projectService.ListProjects(orgID, status, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListProjectsResponse{
		Projects: make([]dto.ProjectResponse, 0, len(projects)),
		Pagination: dto.PaginationInfo{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	}
	for i := range projects {
		response.Projects = append(response.Projects, toProjectResponse(&projects[i]))
	}
	return c.JSON(http.StatusOK, response)
}

// Update edits an active project
func (h *ProjectHandler) Update(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid project id"))
	}

	var req dto.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	project := &models.Project{
		ID:             id,
		OrganizationID: orgID,
		Name:           req.Name,
		Description:    req.Description,
		Status:         models.ProjectStatusActive,
	}
	if project.BudgetIncome, err = parseOptionalAmount(req.BudgetIncome); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget income"))
	}
	if project.BudgetExpenses, err = parseOptionalAmount(req.BudgetExpenses); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget expenses"))
	}

	updated, err := h.projectService.UpdateProject(orgID, project)
	if err != nil {
		return h.mapProjectError(c, err)
	}
	return c.JSON(http.StatusOK, toProjectResponse(updated))
}

// Archive retires a project while keeping its transactions
func (h *ProjectHandler) Archive(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid project id"))
	}

	if err := h.projectService.ArchiveProject(orgID, id); err != nil {
		return h.mapProjectError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Project archived"})
}

// Delete removes a project
func (h *ProjectHandler) Delete(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid project id"))
	}

	if err := h.projectService.DeleteProject(orgID, id); err != nil {
		return h.mapProjectError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProjectHandler) mapProjectError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrProjectNotFound), stderrors.Is(err, services.ErrWrongOrganization):
		return SendError(c, errors.ProjectNotFound)
	case stderrors.Is(err, services.ErrProjectArchived):
		return SendError(c, errors.ProjectArchived)
	case stderrors.Is(err, models.ErrInvalidProjectStatus), stderrors.Is(err, models.ErrMissingOrganization):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

// parseOptionalAmount parses a decimal form field, treating "" as zero
func parseOptionalAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

func toProjectResponse(project *models.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:             project.ID,
		Name:           project.Name,
		Description:    project.Description,
		Status:         project.Status,
		BudgetIncome:   project.BudgetIncome.StringFixed(2),
		BudgetExpenses: project.BudgetExpenses.StringFixed(2),
		CreatedAt:      project.CreatedAt,
		UpdatedAt:      project.UpdatedAt,
	}
}
