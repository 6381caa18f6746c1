package repository

import "github.com/hraei-ti/inventario-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para la bitácora de movimientos.
// La bitácora es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List(limit, offset int) ([]*entity.Movement, error)
}
