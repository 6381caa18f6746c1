package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

var _ repository.ResguardoRepository = (*ResguardoRepo)(nil)

// ResguardoRepo implementación del puerto ResguardoRepository sobre PostgreSQL.
type ResguardoRepo struct {
	q Querier
}

// NewResguardoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResguardoRepository(q Querier) *ResguardoRepo {
	return &ResguardoRepo{q: q}
}

func (r *ResguardoRepo) Create(resguardo *entity.Resguardo) error {
	query := `
		INSERT INTO resguardos (id, resguardo_type, equipment_id, station_id, generated_by_id, is_signed, document_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		resguardo.ID, resguardo.ResguardoType, resguardo.EquipmentID, resguardo.StationID,
		resguardo.GeneratedByID, resguardo.IsSigned, resguardo.DocumentURL, resguardo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resguardo: %w", err)
	}
	return nil
}

func (r *ResguardoRepo) GetByID(id string) (*entity.Resguardo, error) {
	var res entity.Resguardo
	err := r.q.QueryRow(context.Background(), `
		SELECT id, resguardo_type, equipment_id, station_id, generated_by_id, is_signed, document_url, created_at
		FROM resguardos WHERE id = $1`, id,
	).Scan(&res.ID, &res.ResguardoType, &res.EquipmentID, &res.StationID, &res.GeneratedByID, &res.IsSigned, &res.DocumentURL, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resguardo: %w", err)
	}
	return &res, nil
}

// List lista resguardos filtrando opcionalmente por equipo o estación (nil = sin filtro).
func (r *ResguardoRepo) List(equipmentID, stationID *string, limit, offset int) ([]*entity.Resguardo, error) {
	query := `
		SELECT id, resguardo_type, equipment_id, station_id, generated_by_id, is_signed, document_url, created_at
		FROM resguardos
		WHERE ($1::text IS NULL OR equipment_id = $1)
		  AND ($2::text IS NULL OR station_id = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, equipmentID, stationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list resguardos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Resguardo
	for rows.Next() {
		var res entity.Resguardo
		if err := rows.Scan(&res.ID, &res.ResguardoType, &res.EquipmentID, &res.StationID, &res.GeneratedByID, &res.IsSigned, &res.DocumentURL, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resguardo: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// SetSigned marca un resguardo como firmado (o revierte la marca).
func (r *ResguardoRepo) SetSigned(id string, signed bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE resguardos SET is_signed = $2 WHERE id = $1`, id, signed)
	if err != nil {
		return fmt.Errorf("set resguardo signed: %w", err)
	}
	return nil
}
