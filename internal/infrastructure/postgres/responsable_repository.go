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

var _ repository.ResponsableRepository = (*ResponsableRepo)(nil)

// ResponsableRepo implementación del puerto ResponsableRepository sobre PostgreSQL.
type ResponsableRepo struct {
	q Querier
}

// NewResponsableRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResponsableRepository(q Querier) *ResponsableRepo {
	return &ResponsableRepo{q: q}
}

func (r *ResponsableRepo) Create(responsable *entity.Responsable) error {
	query := `
		INSERT INTO responsables (id, full_name, phone, email, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		responsable.ID, responsable.FullName, responsable.Phone, responsable.Email,
		responsable.UserID, responsable.CreatedAt, responsable.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert responsable: %w", err)
	}
	return nil
}

func (r *ResponsableRepo) GetByID(id string) (*entity.Responsable, error) {
	var resp entity.Responsable
	err := r.q.QueryRow(context.Background(), `
		SELECT id, full_name, phone, email, user_id, created_at, updated_at
		FROM responsables WHERE id = $1`, id,
	).Scan(&resp.ID, &resp.FullName, &resp.Phone, &resp.Email, &resp.UserID, &resp.CreatedAt, &resp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get responsable: %w", err)
	}
	return &resp, nil
}

func (r *ResponsableRepo) Update(responsable *entity.Responsable) error {
	query := `
		UPDATE responsables SET full_name = $2, phone = $3, email = $4, user_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		responsable.ID, responsable.FullName, responsable.Phone, responsable.Email,
		responsable.UserID, responsable.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update responsable: %w", err)
	}
	return nil
}

func (r *ResponsableRepo) List(limit, offset int) ([]*entity.Responsable, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, full_name, phone, email, user_id, created_at, updated_at
		FROM responsables ORDER BY full_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list responsables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Responsable
	for rows.Next() {
		var resp entity.Responsable
		if err := rows.Scan(&resp.ID, &resp.FullName, &resp.Phone, &resp.Email, &resp.UserID, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan responsable: %w", err)
		}
		list = append(list, &resp)
	}
	return list, rows.Err()
}

// Delete elimina un responsable. Falla con ErrConflict si tiene activos bajo resguardo.
func (r *ResponsableRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM responsables WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete responsable: %w", err)
	}
	return nil
}
