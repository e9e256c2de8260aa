package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

var ErrInvalidRole = errors.New("invalid user role")

// User is a member of an organization: board members administer budgets,
// regular members submit reimbursements and allowances.
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash   string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName      string     `gorm:"type:varchar(100)" json:"first_name"`
	LastName       string     `gorm:"type:varchar(100)" json:"last_name"`
	Role           string     `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleMember
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return u.Validate()
}

// Validate validates the user fields
func (u *User) Validate() error {
	if u.OrganizationID == uuid.Nil {
		return ErrMissingOrganization
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.Role != RoleAdmin && u.Role != RoleMember {
		return ErrInvalidRole
	}
	return nil
}

// IsAdmin returns true for organization administrators
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName returns the display name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
