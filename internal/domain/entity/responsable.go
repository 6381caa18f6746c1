package entity

import "time"

// Responsable persona que tiene bajo resguardo equipos o estaciones.
type Responsable struct {
	ID        string
	FullName  string
	Phone     string
	Email     string
	UserID    *string // usuario del sistema asociado, opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
