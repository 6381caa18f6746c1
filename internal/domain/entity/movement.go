package entity

import "time"

// Tipos de movimiento registrados en la bitácora.
const (
	MovementCreate    = "alta"
	MovementUpdate    = "modificacion"
	MovementDelete    = "baja"
	MovementResguardo = "resguardo"
)

// Movement entrada de la bitácora de auditoría. Append-only.
type Movement struct {
	ID            string
	UserID        string
	Timestamp     time.Time
	MovementType  string
	Description   string
	EquipmentID   *string
	StationID     *string
	ResponsibleID *string
	LocationID    *string
	ResguardoID   *string
	CreatedAt     time.Time
}
