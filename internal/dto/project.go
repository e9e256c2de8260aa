package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateProjectRequest creates a budgeted project
type CreateProjectRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Description    string `json:"description" validate:"max=2000"`
	BudgetIncome   string `json:"budgetIncome"`
	BudgetExpenses string `json:"budgetExpenses"`
}

// UpdateProjectRequest edits a project
type UpdateProjectRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Description    string `json:"description" validate:"max=2000"`
	BudgetIncome   string `json:"budgetIncome"`
	BudgetExpenses string `json:"budgetExpenses"`
}

// ProjectResponse is the wire representation of a project
type ProjectResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	BudgetIncome   string    `json:"budgetIncome"`
	BudgetExpenses string    `json:"budgetExpenses"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProjectTotalsResponse carries budget-versus-actuals figures
type ProjectTotalsResponse struct {
	ActualIncome    string `json:"actualIncome"`
	ActualExpenses  string `json:"actualExpenses"`
	ExpectedIncome  string `json:"expectedIncome"`
	ExpectedExpense string `json:"expectedExpense"`
}

// ProjectWithTotalsResponse is a project plus its transaction totals
type ProjectWithTotalsResponse struct {
	Project ProjectResponse       `json:"project"`
	Totals  ProjectTotalsResponse `json:"totals"`
}

// ListProjectsResponse is the paginated project listing
type ListProjectsResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Pagination PaginationInfo    `json:"pagination"`
}
