package dto

import "time"

// CreateStationRequest entrada para armar una estación de cómputo.
type CreateStationRequest struct {
	DisplayID            string   `json:"display_id" validate:"required,min=1,max=20"`
	Name                 string   `json:"name" validate:"required,min=1,max=200"`
	CPUID                string   `json:"cpu_id" validate:"required,uuid"`
	MonitorID            string   `json:"monitor_id" validate:"required,uuid"`
	CurrentResponsibleID string   `json:"current_responsible_id" validate:"required,uuid"`
	CurrentLocationID    string   `json:"current_location_id" validate:"required,uuid"`
	StationStatusID      string   `json:"station_status_id" validate:"required,uuid"`
	Accessories          []string `json:"accessories"`
}

// UpdateStationRequest entrada para actualizar una estación.
type UpdateStationRequest struct {
	Name                 *string   `json:"name" validate:"omitempty,min=1,max=200"`
	CPUID                *string   `json:"cpu_id" validate:"omitempty,uuid"`
	MonitorID            *string   `json:"monitor_id" validate:"omitempty,uuid"`
	CurrentResponsibleID *string   `json:"current_responsible_id" validate:"omitempty,uuid"`
	CurrentLocationID    *string   `json:"current_location_id" validate:"omitempty,uuid"`
	StationStatusID      *string   `json:"station_status_id" validate:"omitempty,uuid"`
	Accessories          *[]string `json:"accessories"`
}

// StationResponse salida de una estación con CPU y monitor resueltos.
type StationResponse struct {
	ID              string            `json:"id"`
	DisplayID       string            `json:"display_id"`
	Name            string            `json:"name"`
	CPU             EquipmentResponse `json:"cpu"`
	Monitor         EquipmentResponse `json:"monitor"`
	ResponsibleName string            `json:"responsible_name"`
	Location        LocationResponse  `json:"location"`
	StatusName      string            `json:"status_name"`
	Accessories     []string          `json:"accessories"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// StationListResponse lista paginada de estaciones.
type StationListResponse struct {
	Items []StationResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
