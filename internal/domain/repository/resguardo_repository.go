package repository

import "github.com/hraei-ti/inventario-api/internal/domain/entity"

// ResguardoRepository define el puerto de persistencia para registros de resguardo.
type ResguardoRepository interface {
	Create(resguardo *entity.Resguardo) error
	GetByID(id string) (*entity.Resguardo, error)
	// List filtra opcionalmente por equipo o estación (nil = sin filtro).
	List(equipmentID, stationID *string, limit, offset int) ([]*entity.Resguardo, error)
	SetSigned(id string, signed bool) error
}
