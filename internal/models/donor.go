package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Donor is a person or company whose donations the organization tracks,
// e.g. to issue donation receipts at year end.
type Donor struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address        string    `gorm:"type:text" json:"address,omitempty"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Donor
func (d *Donor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	return d.Validate()
}

// Validate validates the donor fields
func (d *Donor) Validate() error {
	if d.OrganizationID == uuid.Nil {
		return ErrMissingOrganization
	}
	if d.Name == "" {
		return errors.New("donor name is required")
	}
	return nil
}

// TableName returns the table name for Donor
func (d *Donor) TableName() string {
	return "donors"
}
