package repository

import "github.com/hraei-ti/inventario-api/internal/domain/entity"

// DepartmentRepository define el puerto de persistencia para direcciones administrativas.
type DepartmentRepository interface {
	Create(department *entity.AdministrativeDepartment) error
	GetByID(id string) (*entity.AdministrativeDepartment, error)
	Update(department *entity.AdministrativeDepartment) error
	// List devuelve las direcciones; si onlyActive es true, solo las de estado Activa.
	List(onlyActive bool, limit, offset int) ([]*entity.AdministrativeDepartment, error)
	Delete(id string) error
}
