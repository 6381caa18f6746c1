package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEquipmentRequest entrada para dar de alta un equipo.
type CreateEquipmentRequest struct {
	DisplayID            string  `json:"display_id" validate:"required,min=1,max=20"`
	EquipmentTypeID      string  `json:"equipment_type_id" validate:"required,uuid"`
	Brand                string  `json:"brand" validate:"required,min=1,max=100"`
	Model                string  `json:"model" validate:"required,min=1,max=100"`
	SerialNumber         string  `json:"serial_number" validate:"required,min=1,max=100"`
	CurrentStatusID      string  `json:"current_status_id" validate:"required,uuid"`
	CurrentLocationID    string  `json:"current_location_id" validate:"required,uuid"`
	CurrentResponsibleID *string `json:"current_responsible_id" validate:"omitempty,uuid"`
	EstimatedValue       *decimal.Decimal `json:"estimated_value"`
	PurchaseDate         *time.Time       `json:"purchase_date"`
	WarrantyEndDate      *time.Time       `json:"warranty_end_date"`
	Notes                string           `json:"notes"`

	// Solo para impresoras
	PrinterProfile string `json:"printer_profile"`
	PrinterType    string `json:"printer_type"`
}

// UpdateEquipmentRequest entrada para actualizar un equipo (campos opcionales).
type UpdateEquipmentRequest struct {
	Brand                *string          `json:"brand" validate:"omitempty,min=1,max=100"`
	Model                *string          `json:"model" validate:"omitempty,min=1,max=100"`
	SerialNumber         *string          `json:"serial_number" validate:"omitempty,min=1,max=100"`
	CurrentStatusID      *string          `json:"current_status_id" validate:"omitempty,uuid"`
	CurrentLocationID    *string          `json:"current_location_id" validate:"omitempty,uuid"`
	CurrentResponsibleID *string          `json:"current_responsible_id" validate:"omitempty,uuid"`
	EstimatedValue       *decimal.Decimal `json:"estimated_value"`
	PurchaseDate         *time.Time       `json:"purchase_date"`
	WarrantyEndDate      *time.Time       `json:"warranty_end_date"`
	Notes                *string          `json:"notes"`

	PrinterProfile *string `json:"printer_profile"`
	PrinterType    *string `json:"printer_type"`
}

// PrinterDetailsResponse atributos de impresora en respuestas.
type PrinterDetailsResponse struct {
	Profile     string `json:"profile"`
	PrinterType string `json:"printer_type"`
}

// EquipmentResponse salida de un equipo con sus relaciones resueltas.
type EquipmentResponse struct {
	ID                string                  `json:"id"`
	DisplayID         string                  `json:"display_id"`
	TypeName          string                  `json:"type_name"`
	Brand             string                  `json:"brand"`
	Model             string                  `json:"model"`
	SerialNumber      string                  `json:"serial_number"`
	StatusName        string                  `json:"status_name"`
	Location          LocationResponse        `json:"location"`
	ResponsibleName   string                  `json:"responsible_name,omitempty"`
	AssignedStationID *string                 `json:"assigned_station_id,omitempty"`
	EstimatedValue    decimal.Decimal         `json:"estimated_value"`
	PurchaseDate      *time.Time              `json:"purchase_date,omitempty"`
	WarrantyEndDate   *time.Time              `json:"warranty_end_date,omitempty"`
	Notes             string                  `json:"notes,omitempty"`
	Printer           *PrinterDetailsResponse `json:"printer_details,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// EquipmentListResponse lista paginada de equipos.
type EquipmentListResponse struct {
	Items []EquipmentResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
