package dto

import "time"

// MovementResponse entrada de la bitácora en respuestas.
type MovementResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Timestamp     time.Time `json:"timestamp"`
	MovementType  string    `json:"movement_type"`
	Description   string    `json:"description"`
	EquipmentID   *string   `json:"equipment_id,omitempty"`
	StationID     *string   `json:"station_id,omitempty"`
	ResponsibleID *string   `json:"responsible_id,omitempty"`
	LocationID    *string   `json:"location_id,omitempty"`
	ResguardoID   *string   `json:"resguardo_id,omitempty"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
