package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación de CatalogRepository sobre PostgreSQL.
// Los catálogos se siembran con cmd/seed; aquí solo se leen.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func (r *CatalogRepo) ListEquipmentTypes() ([]*entity.EquipmentType, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, created_at, updated_at FROM equipment_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list equipment types: %w", err)
	}
	defer rows.Close()
	var list []*entity.EquipmentType
	for rows.Next() {
		var t entity.EquipmentType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *CatalogRepo) ListEquipmentStatuses() ([]*entity.EquipmentStatus, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, created_at, updated_at FROM equipment_status ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list equipment statuses: %w", err)
	}
	defer rows.Close()
	var list []*entity.EquipmentStatus
	for rows.Next() {
		var s entity.EquipmentStatus
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment status: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *CatalogRepo) GetTypeByID(id string) (*entity.EquipmentType, error) {
	var t entity.EquipmentType
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description, created_at, updated_at FROM equipment_types WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment type: %w", err)
	}
	return &t, nil
}

func (r *CatalogRepo) GetTypeByName(name string) (*entity.EquipmentType, error) {
	var t entity.EquipmentType
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description, created_at, updated_at FROM equipment_types WHERE name = $1`, name,
	).Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment type by name: %w", err)
	}
	return &t, nil
}

func (r *CatalogRepo) GetStatusByName(name string) (*entity.EquipmentStatus, error) {
	var s entity.EquipmentStatus
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description, created_at, updated_at FROM equipment_status WHERE name = $1`, name,
	).Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment status by name: %w", err)
	}
	return &s, nil
}
