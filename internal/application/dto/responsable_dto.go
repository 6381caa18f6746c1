package dto

import "time"

// CreateResponsableRequest entrada para registrar un responsable.
type CreateResponsableRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// UpdateResponsableRequest entrada para actualizar un responsable.
type UpdateResponsableRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// ResponsableResponse salida de un responsable.
type ResponsableResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResponsableListResponse lista paginada de responsables.
type ResponsableListResponse struct {
	Items []ResponsableResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
