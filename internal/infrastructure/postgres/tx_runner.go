package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hraei-ti/inventario-api/internal/application/usecase"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.StationTxRunner.
var _ usecase.StationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Lo usa el caso de uso de estaciones: crear la estación y marcar CPU/Monitor
// como asignados debe ser atómico.
func (r *TxRunner) Run(ctx context.Context, fn func(
	equipmentRepo repository.EquipmentRepository,
	stationRepo repository.StationRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	equipmentRepo := NewEquipmentRepository(tx)
	stationRepo := NewStationRepository(tx)
	movementRepo := NewMovementRepository(tx)

	if err := fn(equipmentRepo, stationRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
