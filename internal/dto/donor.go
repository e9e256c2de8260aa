package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateDonorRequest registers a donor
type CreateDonorRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=500"`
	Note    string `json:"note" validate:"max=2000"`
}

// UpdateDonorRequest edits a donor
type UpdateDonorRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=500"`
	Note    string `json:"note" validate:"max=2000"`
}

// DonorResponse is the wire representation of a donor
type DonorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListDonorsResponse is the paginated donor listing
type ListDonorsResponse struct {
	Donors     []DonorResponse `json:"donors"`
	Pagination PaginationInfo  `json:"pagination"`
}
