package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleTecnico  = "tecnico"
	RoleConsulta = "consulta"
)

// User usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, tecnico, consulta
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
