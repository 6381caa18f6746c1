package entity

import "time"

// EquipmentType catálogo de tipos de equipo (CPU, Monitor, Laptop, Impresora...).
// Es una enumeración abierta: se pueden agregar tipos sin tocar código.
type EquipmentType struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EquipmentStatus catálogo de estados de ciclo de vida
// (Activo, Asignado, Disponible, En Reparación, En Mantenimiento, De Baja).
type EquipmentStatus struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
