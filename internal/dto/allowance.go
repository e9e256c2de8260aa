package dto

import (
	"time"

	"github.com/google/uuid"
)

// GrantAllowanceRequest records a volunteer allowance payout
type GrantAllowanceRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Year   int       `json:"year" validate:"omitempty,min=2000,max=2100"`
	Amount string    `json:"amount" validate:"required"`
	Note   string    `json:"note" validate:"max=2000"`
}

// AllowanceResponse is the wire representation of a payout
type AllowanceResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Year      int       `json:"year"`
	Amount    string    `json:"amount"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// RemainingAllowanceResponse reports the unused part of the annual cap
type RemainingAllowanceResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Year      int       `json:"year"`
	Remaining string    `json:"remaining"`
}

// ListAllowancesResponse is the paginated allowance listing
type ListAllowancesResponse struct {
	Allowances []AllowanceResponse `json:"allowances"`
	Pagination PaginationInfo      `json:"pagination"`
}
