package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Building         string `json:"building" validate:"required,min=1,max=100"`
	Floor            string `json:"floor" validate:"required,min=1,max=100"`
	ServiceArea      string `json:"service_area" validate:"required,min=1,max=200"`
	InternalLocation string `json:"internal_location" validate:"required,min=1,max=200"`
	Description      string `json:"description"`
}

// UpdateLocationRequest entrada para actualizar una ubicación.
type UpdateLocationRequest struct {
	Building         *string `json:"building" validate:"omitempty,min=1,max=100"`
	Floor            *string `json:"floor" validate:"omitempty,min=1,max=100"`
	ServiceArea      *string `json:"service_area" validate:"omitempty,min=1,max=200"`
	InternalLocation *string `json:"internal_location" validate:"omitempty,min=1,max=200"`
	Description      *string `json:"description"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID               string    `json:"id"`
	Building         string    `json:"building"`
	Floor            string    `json:"floor"`
	ServiceArea      string    `json:"service_area"`
	InternalLocation string    `json:"internal_location"`
	Description      string    `json:"description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LocationListResponse lista paginada de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
