package repository

import "github.com/hraei-ti/inventario-api/internal/domain/entity"

// EquipmentRepository define el puerto de persistencia para equipos (DIP).
type EquipmentRepository interface {
	Create(equipment *entity.Equipment) error
	GetByID(id string) (*entity.Equipment, error)
	GetByDisplayID(displayID string) (*entity.Equipment, error)
	GetPopulatedByID(id string) (*entity.PopulatedEquipment, error)
	Update(equipment *entity.Equipment) error
	ListPopulated(limit, offset int) ([]*entity.PopulatedEquipment, error)
	Delete(id string) error

	// AssignToStation fija o limpia (nil) la estación a la que pertenece el equipo.
	AssignToStation(equipmentID string, stationID *string) error

	// Detalles de impresora (1:1, solo cuando el tipo es Impresora).
	UpsertPrinterDetails(details *entity.PrinterDetails) error
	GetPrinterDetails(equipmentID string) (*entity.PrinterDetails, error)
}
