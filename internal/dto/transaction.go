package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTransactionRequest records a manual transaction
type CreateTransactionRequest struct {
	BookedAt     time.Time  `json:"bookedAt" validate:"required"`
	Amount       string     `json:"amount" validate:"required"`
	Status       string     `json:"status" validate:"omitempty,oneof=expected processed"`
	Description  string     `json:"description" validate:"max=2000"`
	Counterparty string     `json:"counterparty" validate:"max=200"`
	CategoryID   *uuid.UUID `json:"categoryId"`
	ProjectID    *uuid.UUID `json:"projectId"`
	DonorID      *uuid.UUID `json:"donorId"`
}

// UpdateTransactionRequest edits an existing transaction. Imported rows
// reject amount and date changes.
type UpdateTransactionRequest struct {
	BookedAt     time.Time  `json:"bookedAt" validate:"required"`
	Amount       string     `json:"amount" validate:"required"`
	Status       string     `json:"status" validate:"omitempty,oneof=expected processed"`
	Description  string     `json:"description" validate:"max=2000"`
	Counterparty string     `json:"counterparty" validate:"max=200"`
	CategoryID   *uuid.UUID `json:"categoryId"`
	ProjectID    *uuid.UUID `json:"projectId"`
	DonorID      *uuid.UUID `json:"donorId"`
}

// CategorizeTransactionRequest assigns labels to a transaction
type CategorizeTransactionRequest struct {
	CategoryID *uuid.UUID `json:"categoryId"`
	ProjectID  *uuid.UUID `json:"projectId"`
	DonorID    *uuid.UUID `json:"donorId"`
}

// TransactionQuery contains filtering options for transaction listings
type TransactionQuery struct {
	StartDate    *time.Time `query:"startDate"`
	EndDate      *time.Time `query:"endDate"`
	Status       string     `query:"status"`
	ImportSource string     `query:"importSource"`
	CategoryID   *uuid.UUID `query:"categoryId"`
	ProjectID    *uuid.UUID `query:"projectId"`
	DonorID      *uuid.UUID `query:"donorId"`
	Search       string     `query:"search"`
	Offset       int        `query:"offset"`
	Limit        int        `query:"limit"`
}

// PaginationInfo contains offset pagination metadata
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// TransactionResponse is the wire representation of one transaction
type TransactionResponse struct {
	ID                    uuid.UUID  `json:"id"`
	BookedAt              time.Time  `json:"bookedAt"`
	Amount                string     `json:"amount"`
	Status                string     `json:"status"`
	Description           string     `json:"description,omitempty"`
	Counterparty          string     `json:"counterparty,omitempty"`
	AccountName           string     `json:"accountName,omitempty"`
	CategoryID            *uuid.UUID `json:"categoryId,omitempty"`
	ProjectID             *uuid.UUID `json:"projectId,omitempty"`
	DonorID               *uuid.UUID `json:"donorId,omitempty"`
	ImportSource          string     `json:"importSource,omitempty"`
	ImportedTransactionID *string    `json:"importedTransactionId,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// ListTransactionsResponse is the paginated transaction listing
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// CategorySummaryEntry is one row of the per-category aggregation
type CategorySummaryEntry struct {
	CategoryID       *uuid.UUID `json:"categoryId,omitempty"`
	CategoryName     string     `json:"categoryName"`
	TransactionCount int64      `json:"transactionCount"`
	TotalAmount      string     `json:"totalAmount"`
}
