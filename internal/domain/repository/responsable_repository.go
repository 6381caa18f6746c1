package repository

import "github.com/hraei-ti/inventario-api/internal/domain/entity"

// ResponsableRepository define el puerto de persistencia para responsables.
type ResponsableRepository interface {
	Create(responsable *entity.Responsable) error
	GetByID(id string) (*entity.Responsable, error)
	Update(responsable *entity.Responsable) error
	List(limit, offset int) ([]*entity.Responsable, error)
	Delete(id string) error
}
