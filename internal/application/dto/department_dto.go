package dto

import "time"

// CreateDepartmentRequest entrada para crear una dirección administrativa.
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=Activa Inactiva"`
}

// UpdateDepartmentRequest entrada para actualizar una dirección administrativa.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=Activa Inactiva"`
}

// DepartmentResponse salida de una dirección administrativa.
type DepartmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DepartmentListResponse lista paginada de direcciones administrativas.
type DepartmentListResponse struct {
	Items []DepartmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
