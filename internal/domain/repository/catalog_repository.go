package repository

import "github.com/hraei-ti/inventario-api/internal/domain/entity"

// CatalogRepository puertos de lectura para los catálogos de tipos y estados.
// Se siembran con cmd/seed; la API solo los lista y resuelve por nombre.
type CatalogRepository interface {
	ListEquipmentTypes() ([]*entity.EquipmentType, error)
	ListEquipmentStatuses() ([]*entity.EquipmentStatus, error)
	GetTypeByID(id string) (*entity.EquipmentType, error)
	GetTypeByName(name string) (*entity.EquipmentType, error)
	GetStatusByName(name string) (*entity.EquipmentStatus, error)
}
