package entity

import "time"

// Estados válidos para una dirección administrativa.
const (
	DepartmentActive   = "Activa"
	DepartmentInactive = "Inactiva"
)

// AdministrativeDepartment dirección/área administrativa del hospital.
type AdministrativeDepartment struct {
	ID          string
	Name        string
	Description string
	Status      string // Activa | Inactiva
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
