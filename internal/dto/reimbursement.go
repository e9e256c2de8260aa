package dto

import (
	"time"

	"github.com/google/uuid"
)

// SubmitReimbursementRequest files an expense claim
type SubmitReimbursementRequest struct {
	Amount      string     `json:"amount" validate:"required"`
	Description string     `json:"description" validate:"required,min=1,max=2000"`
	ProjectID   *uuid.UUID `json:"projectId"`
}

// DecideReimbursementRequest approves or rejects a claim
type DecideReimbursementRequest struct {
	Note string `json:"note" validate:"max=2000"`
}

// ReimbursementResponse is the wire representation of a claim
type ReimbursementResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	ProjectID     *uuid.UUID `json:"projectId,omitempty"`
	Amount        string     `json:"amount"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	DecisionNote  string     `json:"decisionNote,omitempty"`
	DecidedBy     *uuid.UUID `json:"decidedBy,omitempty"`
	DecidedAt     *time.Time `json:"decidedAt,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	TransactionID *uuid.UUID `json:"transactionId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ListReimbursementsResponse is the paginated claim listing
type ListReimbursementsResponse struct {
	Reimbursements []ReimbursementResponse `json:"reimbursements"`
	Pagination     PaginationInfo          `json:"pagination"`
}
