package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization is a nonprofit whose budget this system manages. Every other
// record is scoped to exactly one organization.
type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	IBAN      string    `gorm:"type:varchar(34)" json:"iban,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Organization
func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return o.Validate()
}

// Validate validates the organization fields
func (o *Organization) Validate() error {
	if o.Name == "" {
		return errors.New("organization name is required")
	}
	return nil
}

// TableName returns the table name for Organization
func (o *Organization) TableName() string {
	return "organizations"
}
