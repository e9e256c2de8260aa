package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryKindIncome  = "income"
	CategoryKindExpense = "expense"
)

var ErrInvalidCategoryKind = errors.New("invalid category kind")

// Category labels transactions for reporting (membership fees, donations,
// rent, ...). Kind constrains which amount signs it applies to.
type Category struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	Kind           string    `gorm:"type:varchar(20);not null" json:"kind"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.OrganizationID == uuid.Nil {
		return ErrMissingOrganization
	}
	if c.Name == "" {
		return errors.New("category name is required")
	}
	if c.Kind != CategoryKindIncome && c.Kind != CategoryKindExpense {
		return ErrInvalidCategoryKind
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}
