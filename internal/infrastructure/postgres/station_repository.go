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

var _ repository.StationRepository = (*StationRepo)(nil)

// StationRepo implementación del puerto StationRepository sobre PostgreSQL (usable con pool o tx).
type StationRepo struct {
	q Querier
}

// NewStationRepository construye el adaptador de persistencia para estaciones. Pasar pool o tx (Querier).
func NewStationRepository(q Querier) *StationRepo {
	return &StationRepo{q: q}
}

// Create persiste una nueva estación.
func (r *StationRepo) Create(station *entity.Station) error {
	query := `
		INSERT INTO stations (id, display_id, name, cpu_id, monitor_id, current_responsible_id, current_location_id, station_status_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		station.ID, station.DisplayID, station.Name, station.CPUID, station.MonitorID,
		station.CurrentResponsibleID, station.CurrentLocationID, station.StationStatusID,
		station.CreatedAt, station.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert station: %w", err)
	}
	return nil
}

const stationColumns = `id, display_id, name, cpu_id, monitor_id, current_responsible_id, current_location_id, station_status_id, created_at, updated_at`

func scanStation(row pgx.Row, s *entity.Station) error {
	return row.Scan(
		&s.ID, &s.DisplayID, &s.Name, &s.CPUID, &s.MonitorID,
		&s.CurrentResponsibleID, &s.CurrentLocationID, &s.StationStatusID,
		&s.CreatedAt, &s.UpdatedAt,
	)
}

// GetByID obtiene una estación por ID.
func (r *StationRepo) GetByID(id string) (*entity.Station, error) {
	var s entity.Station
	err := scanStation(r.q.QueryRow(context.Background(),
		`SELECT `+stationColumns+` FROM stations WHERE id = $1`, id), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get station: %w", err)
	}
	return &s, nil
}

// GetPopulatedByID obtiene una estación con CPU, monitor, responsable,
// ubicación, estado y accesorios resueltos. Reusa la consulta poblada de
// equipos para los dos componentes.
func (r *StationRepo) GetPopulatedByID(id string) (*entity.PopulatedStation, error) {
	var p entity.PopulatedStation
	err := r.q.QueryRow(context.Background(), `
		SELECT st.id, st.display_id, st.name, st.cpu_id, st.monitor_id,
		       st.current_responsible_id, st.current_location_id, st.station_status_id,
		       st.created_at, st.updated_at,
		       resp.id, resp.full_name, resp.phone, resp.email, resp.user_id,
		       l.id, l.building, l.floor, l.service_area, l.internal_location, l.description, l.created_at, l.updated_at,
		       s.name
		FROM stations st
		JOIN responsables resp ON resp.id = st.current_responsible_id
		JOIN locations l ON l.id = st.current_location_id
		JOIN equipment_status s ON s.id = st.station_status_id
		WHERE st.id = $1`, id,
	).Scan(
		&p.ID, &p.DisplayID, &p.Name, &p.CPUID, &p.MonitorID,
		&p.Station.CurrentResponsibleID, &p.Station.CurrentLocationID, &p.StationStatusID,
		&p.CreatedAt, &p.UpdatedAt,
		&p.Responsible.ID, &p.Responsible.FullName, &p.Responsible.Phone, &p.Responsible.Email, &p.Responsible.UserID,
		&p.Location.ID, &p.Location.Building, &p.Location.Floor, &p.Location.ServiceArea,
		&p.Location.InternalLocation, &p.Location.Description, &p.Location.CreatedAt, &p.Location.UpdatedAt,
		&p.StatusName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get populated station: %w", err)
	}

	if err := r.populateComponents(&p); err != nil {
		return nil, err
	}
	accessories, err := r.GetAccessories(p.ID)
	if err != nil {
		return nil, err
	}
	p.Accessories = accessories
	return &p, nil
}

func (r *StationRepo) populateComponents(p *entity.PopulatedStation) error {
	cpu, err := scanPopulatedEquipment(r.q.QueryRow(context.Background(),
		populatedEquipmentQuery+` WHERE e.id = $1`, p.CPUID))
	if err != nil {
		return fmt.Errorf("get station cpu: %w", err)
	}
	monitor, err := scanPopulatedEquipment(r.q.QueryRow(context.Background(),
		populatedEquipmentQuery+` WHERE e.id = $1`, p.MonitorID))
	if err != nil {
		return fmt.Errorf("get station monitor: %w", err)
	}
	p.CPU = *cpu
	p.Monitor = *monitor
	return nil
}

// Update actualiza una estación existente. DisplayID no cambia después del alta.
func (r *StationRepo) Update(station *entity.Station) error {
	query := `
		UPDATE stations SET name = $2, cpu_id = $3, monitor_id = $4, current_responsible_id = $5,
		       current_location_id = $6, station_status_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		station.ID, station.Name, station.CPUID, station.MonitorID,
		station.CurrentResponsibleID, station.CurrentLocationID, station.StationStatusID,
		station.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update station: %w", err)
	}
	return nil
}

// ListPopulated lista estaciones con relaciones resueltas, paginado.
func (r *StationRepo) ListPopulated(limit, offset int) ([]*entity.PopulatedStation, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+stationColumns+` FROM stations ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var s entity.Station
		if err := scanStation(rows, &s); err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	list := make([]*entity.PopulatedStation, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetPopulatedByID(id)
		if err != nil {
			return nil, err
		}
		if p != nil {
			list = append(list, p)
		}
	}
	return list, nil
}

// Delete elimina una estación por ID. Los accesorios caen por ON DELETE CASCADE;
// el desligue de CPU/Monitor lo hace el caso de uso dentro de la transacción.
func (r *StationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete station: %w", err)
	}
	return nil
}

// ReplaceAccessories reemplaza la lista completa de accesorios de la estación.
func (r *StationRepo) ReplaceAccessories(stationID string, accessories []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM station_accessories WHERE station_id = $1`, stationID); err != nil {
		return fmt.Errorf("clear station accessories: %w", err)
	}
	for _, name := range accessories {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO station_accessories (station_id, name) VALUES ($1, $2)`,
			stationID, name); err != nil {
			return fmt.Errorf("insert station accessory: %w", err)
		}
	}
	return nil
}

// GetAccessories devuelve los nombres de accesorios de la estación.
func (r *StationRepo) GetAccessories(stationID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT name FROM station_accessories WHERE station_id = $1 ORDER BY name`, stationID)
	if err != nil {
		return nil, fmt.Errorf("get station accessories: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan accessory: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
