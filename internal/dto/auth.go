package dto

import "time"

// Auth Request DTOs

// RegisterRequest registers a new organization with its first admin
type RegisterRequest struct {
	OrganizationName string `json:"organizationName" validate:"required,min=2,max=200"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=10"`
	FirstName        string `json:"firstName" validate:"required,min=1,max=100"`
	LastName         string `json:"lastName" validate:"required,min=1,max=100"`
}

// LoginRequest contains login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AddMemberRequest adds a user to the caller's organization
type AddMemberRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=10"`
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100"`
	Role      string `json:"role" validate:"required,oneof=admin member"`
}

// Auth Response DTOs

// TokenResponse contains the issued access token
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// UserProfileResponse represents a user inside an organization
type UserProfileResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LoginResponse bundles the token with the user profile
type LoginResponse struct {
	Token TokenResponse       `json:"token"`
	User  UserProfileResponse `json:"user"`
}
