package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters narrows transaction listings. Zero values mean
// "no filter" for the corresponding field.
type TransactionFilters struct {
	OrganizationID uuid.UUID
	ProjectID      *uuid.UUID
	CategoryID     *uuid.UUID
	DonorID        *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	Status         string
	ImportSource   string
	MinAmount      *decimal.Decimal
	MaxAmount      *decimal.Decimal
	Search         string
	Offset         int
	Limit          int
}

// ProjectTotals aggregates settled and expected spending of one project.
type ProjectTotals struct {
	ProjectID       uuid.UUID       `json:"project_id"`
	ActualIncome    decimal.Decimal `json:"actual_income"`
	ActualExpenses  decimal.Decimal `json:"actual_expenses"`
	ExpectedIncome  decimal.Decimal `json:"expected_income"`
	ExpectedExpense decimal.Decimal `json:"expected_expenses"`
}

// CategorySummary aggregates transactions per category for reporting.
// CategoryID is nil for the bucket of uncategorized transactions.
type CategorySummary struct {
	CategoryID       *uuid.UUID      `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}
