package entity

import (
	"strings"
	"time"
)

// Location ubicación física dentro del hospital, en cuatro partes.
type Location struct {
	ID               string
	Building         string
	Floor            string
	ServiceArea      string
	InternalLocation string
	Description      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Flat devuelve la representación plana heredada "edificio, piso, ubicación interna",
// que es el formato que consumen los generadores de resguardos.
func (l Location) Flat() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Building, l.Floor, l.InternalLocation} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
