package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nombres de tipo de equipo con significado especial en el inventario.
// El catálogo equipment_types es abierto; estos dos se validan al armar estaciones.
const (
	TypeCPU     = "CPU"
	TypeMonitor = "Monitor"
)

// Equipment representa un bien informático individual (CPU, monitor, laptop, impresora...).
type Equipment struct {
	ID                   string
	DisplayID            string // identificador visible, ej. EQ001
	EquipmentTypeID      string // FK a equipment_types
	Brand                string
	Model                string
	SerialNumber         string
	CurrentStatusID      string  // FK a equipment_status
	CurrentLocationID    string  // FK a locations
	CurrentResponsibleID *string // FK a responsables, opcional
	AssignedStationID    *string // FK a stations; solo CPU/Monitor integrados a una estación
	EstimatedValue       decimal.Decimal
	PurchaseDate         *time.Time
	WarrantyEndDate      *time.Time
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PrinterDetails atributos propios de impresoras (1:1 con Equipment cuando el tipo es Impresora).
type PrinterDetails struct {
	EquipmentID string
	Profile     string // Color, Monocromática, Red, WiFi, USB
	PrinterType string // Láser, Inyección de Tinta, Térmica
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PopulatedEquipment es la vista de lectura de un equipo con sus relaciones resueltas.
type PopulatedEquipment struct {
	Equipment
	TypeName    string
	StatusName  string
	Location    Location
	Responsible *Responsable
	Printer     *PrinterDetails
}
