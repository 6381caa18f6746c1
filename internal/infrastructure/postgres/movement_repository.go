package postgres

import (
	"context"
	"fmt"

	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL.
// La bitácora es append-only: solo Insert y Select.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, user_id, timestamp, movement_type, description, equipment_id, station_id, responsible_id, location_id, resguardo_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.UserID, movement.Timestamp, movement.MovementType, movement.Description,
		movement.EquipmentID, movement.StationID, movement.ResponsibleID, movement.LocationID,
		movement.ResguardoID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, user_id, timestamp, movement_type, description, equipment_id, station_id, responsible_id, location_id, resguardo_id, created_at
		FROM movements ORDER BY timestamp DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.UserID, &m.Timestamp, &m.MovementType, &m.Description,
			&m.EquipmentID, &m.StationID, &m.ResponsibleID, &m.LocationID, &m.ResguardoID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
