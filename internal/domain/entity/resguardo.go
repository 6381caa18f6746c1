package entity

import "time"

// Resguardo registro de que se generó una hoja de resguardo para un equipo o
// una estación. El documento en sí no se almacena; solo el hecho y su tipo.
type Resguardo struct {
	ID            string
	ResguardoType string // "Asignación Inicial", "Mantenimiento Preventivo", ...
	EquipmentID   *string
	StationID     *string
	GeneratedByID string // usuario que generó el documento
	IsSigned      bool
	DocumentURL   string // opcional, si el documento se archiva en otro sistema
	CreatedAt     time.Time
}
