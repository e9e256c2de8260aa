package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ReimbursementStatusSubmitted = "submitted"
	ReimbursementStatusApproved  = "approved"
	ReimbursementStatusRejected  = "rejected"
	ReimbursementStatusPaid      = "paid"
)

var (
	ErrInvalidReimbursementStatus = errors.New("invalid reimbursement status")
	ErrInvalidReimbursementAmount = errors.New("reimbursement amount must be positive")
)

// Reimbursement is a member's claim for expenses paid out of pocket. It
// moves submitted -> approved -> paid, or submitted -> rejected; paying it
// creates the matching expense transaction.
type Reimbursement struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"organization_id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ProjectID      *uuid.UUID      `gorm:"type:uuid;index" json:"project_id,omitempty"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description    string          `gorm:"type:text;not null" json:"description"`
	Status         string          `gorm:"type:varchar(20);not null;default:'submitted'" json:"status"`
	DecisionNote   string          `gorm:"type:text" json:"decision_note,omitempty"`
	DecidedBy      *uuid.UUID      `gorm:"type:uuid" json:"decided_by,omitempty"`
	DecidedAt      *time.Time      `json:"decided_at,omitempty"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	TransactionID  *uuid.UUID      `gorm:"type:uuid" json:"transaction_id,omitempty"`
	CreatedAt      time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Reimbursement
func (r *Reimbursement) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = ReimbursementStatusSubmitted
	}
	return r.Validate()
}

// Validate validates the reimbursement fields
func (r *Reimbursement) Validate() error {
	if r.OrganizationID == uuid.Nil {
		return ErrMissingOrganization
	}
	if r.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidReimbursementStatus(r.Status) {
		return ErrInvalidReimbursementStatus
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidReimbursementAmount
	}
	if r.Description == "" {
		return errors.New("reimbursement description is required")
	}
	return nil
}

// CanTransitionTo checks if a reimbursement can move to a new status
func (r *Reimbursement) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		ReimbursementStatusSubmitted: {ReimbursementStatusApproved, ReimbursementStatusRejected},
		ReimbursementStatusApproved:  {ReimbursementStatusPaid},
		ReimbursementStatusRejected:  {}, // Terminal state
		ReimbursementStatusPaid:      {}, // Terminal state
	}

	for _, status := range validTransitions[r.Status] {
		if status == newStatus {
			return true
		}
	}
	return false
}

// IsValidReimbursementStatus checks if the status is valid
func IsValidReimbursementStatus(status string) bool {
	switch status {
	case ReimbursementStatusSubmitted, ReimbursementStatusApproved,
		ReimbursementStatusRejected, ReimbursementStatusPaid:
		return true
	default:
		return false
	}
}

// TableName returns the table name for Reimbursement
func (r *Reimbursement) TableName() string {
	return "reimbursements"
}
