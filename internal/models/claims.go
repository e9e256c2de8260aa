package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims carries the authenticated user's identity inside a JWT.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	TokenType      string `json:"token_type"`
}
