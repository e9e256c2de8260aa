package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allowance is a volunteer-allowance payout (Ehrenamtspauschale). The
// statutory tax-free total per volunteer and calendar year is capped; the
// service layer enforces the cap across all of a volunteer's payouts.
type Allowance struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"organization_id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Year           int             `gorm:"not null;index" json:"year"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Note           string          `gorm:"type:text" json:"note,omitempty"`
	TransactionID  *uuid.UUID      `gorm:"type:uuid" json:"transaction_id,omitempty"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Allowance
func (a *Allowance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Year == 0 {
		a.Year = time.Now().UTC().Year()
	}
	return a.Validate()
}

// Validate validates the allowance fields
func (a *Allowance) Validate() error {
	if a.OrganizationID == uuid.Nil {
		return ErrMissingOrganization
	}
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if a.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("allowance amount must be positive")
	}
	if a.Year < 2000 || a.Year > 2200 {
		return errors.New("allowance year out of range")
	}
	return nil
}

// TableName returns the table name for Allowance
func (a *Allowance) TableName() string {
	return "allowances"
}
