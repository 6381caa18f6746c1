package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hraei-ti/inventario-api/internal/domain"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

func (r *DepartmentRepo) Create(department *entity.AdministrativeDepartment) error {
	query := `
		INSERT INTO administrative_departments (id, name, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		department.ID, department.Name, department.Description, department.Status,
		department.CreatedAt, department.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

func (r *DepartmentRepo) GetByID(id string) (*entity.AdministrativeDepartment, error) {
	var d entity.AdministrativeDepartment
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, description, status, created_at, updated_at
		FROM administrative_departments WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Description, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

func (r *DepartmentRepo) Update(department *entity.AdministrativeDepartment) error {
	query := `
		UPDATE administrative_departments SET name = $2, description = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		department.ID, department.Name, department.Description, department.Status, department.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

// List devuelve las direcciones administrativas; con onlyActive solo las de estado Activa.
func (r *DepartmentRepo) List(onlyActive bool, limit, offset int) ([]*entity.AdministrativeDepartment, error) {
	query := `
		SELECT id, name, description, status, created_at, updated_at
		FROM administrative_departments`
	args := []any{}
	if onlyActive {
		query += ` WHERE status = $1 ORDER BY name LIMIT $2 OFFSET $3`
		args = append(args, entity.DepartmentActive, limit, offset)
	} else {
		query += ` ORDER BY name LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()
	var list []*entity.AdministrativeDepartment
	for rows.Next() {
		var d entity.AdministrativeDepartment
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DepartmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM administrative_departments WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}
