package entity

import "time"

// Station es una estación de cómputo: un CPU y un Monitor emparejados bajo un
// mismo responsable y ubicación. Invariante: CPUID y MonitorID referencian
// equipos cuyo tipo de catálogo es CPU y Monitor respectivamente; lo valida el
// caso de uso al crear o reconfigurar la estación.
type Station struct {
	ID                   string
	DisplayID            string // ej. EST001
	Name                 string
	CPUID                string
	MonitorID            string
	CurrentResponsibleID string
	CurrentLocationID    string
	StationStatusID      string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PopulatedStation vista de lectura de una estación con relaciones resueltas.
// Accessories son los nombres de accesorios de la tabla puente, sin orden garantizado.
type PopulatedStation struct {
	Station
	CPU         PopulatedEquipment
	Monitor     PopulatedEquipment
	Responsible Responsable
	Location    Location
	StatusName  string
	Accessories []string
}
