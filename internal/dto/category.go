package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCategoryRequest creates a transaction category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Kind string `json:"kind" validate:"required,oneof=income expense"`
}

// UpdateCategoryRequest edits a category
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Kind string `json:"kind" validate:"required,oneof=income expense"`
}

// CategoryResponse is the wire representation of a category
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListCategoriesResponse lists an organization's categories
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
