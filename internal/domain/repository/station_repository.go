package repository

import "github.com/hraei-ti/inventario-api/internal/domain/entity"

// StationRepository define el puerto de persistencia para estaciones.
type StationRepository interface {
	Create(station *entity.Station) error
	GetByID(id string) (*entity.Station, error)
	GetPopulatedByID(id string) (*entity.PopulatedStation, error)
	Update(station *entity.Station) error
	ListPopulated(limit, offset int) ([]*entity.PopulatedStation, error)
	Delete(id string) error

	// ReplaceAccessories reemplaza la lista completa de accesorios de la estación.
	ReplaceAccessories(stationID string, accessories []string) error
	GetAccessories(stationID string) ([]string, error)
}
