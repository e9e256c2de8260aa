package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProjectStatusActive   = "active"
	ProjectStatusArchived = "archived"
)

var ErrInvalidProjectStatus = errors.New("invalid project status")

// Project is a budget envelope: a planned activity with an allocated budget
// that transactions are assigned to.
type Project struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Description    string          `gorm:"type:text" json:"description,omitempty"`
	BudgetIncome   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"budget_income"`
	BudgetExpenses decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"budget_expenses"`
	Status         string          `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	StartsAt       *time.Time      `json:"starts_at,omitempty"`
	EndsAt         *time.Time      `json:"ends_at,omitempty"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Project
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = ProjectStatusActive
	}
	return p.Validate()
}

// Validate validates the project fields
func (p *Project) Validate() error {
	if p.OrganizationID == uuid.Nil {
		return ErrMissingOrganization
	}
	if p.Name == "" {
		return errors.New("project name is required")
	}
	if p.Status != ProjectStatusActive && p.Status != ProjectStatusArchived {
		return ErrInvalidProjectStatus
	}
	if p.BudgetIncome.IsNegative() || p.BudgetExpenses.IsNegative() {
		return errors.New("project budget cannot be negative")
	}
	if p.StartsAt != nil && p.EndsAt != nil && p.EndsAt.Before(*p.StartsAt) {
		return errors.New("project end date before start date")
	}
	return nil
}

// IsActive returns true for projects still accepting transactions
func (p *Project) IsActive() bool {
	return p.Status == ProjectStatusActive
}

// TableName returns the table name for Project
func (p *Project) TableName() string {
	return "projects"
}
