package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// TransactionStatusExpected marks a planned transaction not yet settled.
	TransactionStatusExpected = "expected"
	// TransactionStatusProcessed marks a settled transaction reflected in the
	// actual account balance.
	TransactionStatusProcessed = "processed"
)

var (
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrMissingOrganization      = errors.New("organization ID is required")
)

// Transaction is one income or expense line of an organization. The amount
// sign is the sole income/expense signal: positive is income, negative is
// expense. Rows created by CSV import carry the source tag and a stable
// ImportedTransactionID; the latter is unique per organization so the same
// bank-statement line can never import twice.
type Transaction struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_transactions_org_import_id" json:"organization_id"`
	ProjectID      *uuid.UUID `gorm:"type:uuid;index" json:"project_id,omitempty"`
	CategoryID     *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	DonorID        *uuid.UUID `gorm:"type:uuid;index" json:"donor_id,omitempty"`

	BookedAt time.Time       `gorm:"not null;index" json:"booked_at"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status   string          `gorm:"type:varchar(20);not null;default:'processed'" json:"status"`

	Description  string `gorm:"type:text" json:"description"`
	Counterparty string `gorm:"type:varchar(255)" json:"counterparty"`
	AccountName  string `gorm:"type:varchar(255)" json:"account_name,omitempty"`

	// ImportedTransactionID is nil for manually entered transactions so the
	// unique index only constrains imported rows.
	ImportedTransactionID *string `gorm:"type:varchar(255);uniqueIndex:idx_transactions_org_import_id" json:"imported_transaction_id,omitempty"`
	ImportSource          string  `gorm:"type:varchar(20)" json:"import_source,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Status == "" {
		t.Status = TransactionStatusProcessed
	}

	if t.BookedAt.IsZero() {
		t.BookedAt = time.Now().UTC()
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}

// Validate validates the transaction fields. Amounts and descriptions are
// deliberately unconstrained: the import pipeline degrades malformed rows to
// zero/empty values so a human can correct them afterward.
func (t *Transaction) Validate() error {
	if t.OrganizationID == uuid.Nil {
		return ErrMissingOrganization
	}

	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}

	return nil
}

// IsProcessed returns true if the transaction has settled
func (t *Transaction) IsProcessed() bool {
	return t.Status == TransactionStatusProcessed
}

// IsExpected returns true if the transaction is still planned
func (t *Transaction) IsExpected() bool {
	return t.Status == TransactionStatusExpected
}

// IsIncome returns true for positive amounts
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense returns true for negative amounts
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsImported returns true when the transaction came from a CSV import
func (t *Transaction) IsImported() bool {
	return t.ImportedTransactionID != nil && *t.ImportedTransactionID != ""
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusExpected, TransactionStatusProcessed:
		return true
	default:
		return false
	}
}
