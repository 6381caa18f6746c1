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

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación del puerto EquipmentRepository sobre PostgreSQL (usable con pool o tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador de persistencia para equipos. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

// Create persiste un nuevo equipo.
func (r *EquipmentRepo) Create(equipment *entity.Equipment) error {
	query := `
		INSERT INTO equipment (id, display_id, equipment_type_id, brand, model, serial_number, current_status_id, current_location_id, current_responsible_id, assigned_station_id, estimated_value, purchase_date, warranty_end_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.DisplayID, equipment.EquipmentTypeID, equipment.Brand, equipment.Model,
		equipment.SerialNumber, equipment.CurrentStatusID, equipment.CurrentLocationID,
		equipment.CurrentResponsibleID, equipment.AssignedStationID, equipment.EstimatedValue,
		equipment.PurchaseDate, equipment.WarrantyEndDate, equipment.Notes,
		equipment.CreatedAt, equipment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

const equipmentColumns = `id, display_id, equipment_type_id, brand, model, serial_number, current_status_id, current_location_id, current_responsible_id, assigned_station_id, estimated_value, purchase_date, warranty_end_date, notes, created_at, updated_at`

func scanEquipment(row pgx.Row, e *entity.Equipment) error {
	return row.Scan(
		&e.ID, &e.DisplayID, &e.EquipmentTypeID, &e.Brand, &e.Model, &e.SerialNumber,
		&e.CurrentStatusID, &e.CurrentLocationID, &e.CurrentResponsibleID, &e.AssignedStationID,
		&e.EstimatedValue, &e.PurchaseDate, &e.WarrantyEndDate, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
}

// GetByID obtiene un equipo por ID.
func (r *EquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	var e entity.Equipment
	err := scanEquipment(r.q.QueryRow(context.Background(),
		`SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id), &e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return &e, nil
}

// GetByDisplayID obtiene un equipo por su identificador visible (EQ001...).
func (r *EquipmentRepo) GetByDisplayID(displayID string) (*entity.Equipment, error) {
	var e entity.Equipment
	err := scanEquipment(r.q.QueryRow(context.Background(),
		`SELECT `+equipmentColumns+` FROM equipment WHERE display_id = $1`, displayID), &e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment by display_id: %w", err)
	}
	return &e, nil
}

// populatedEquipmentQuery trae el equipo con tipo, estado, ubicación, responsable
// e impresora resueltos en una sola consulta. Los LEFT JOIN dejan NULL cuando no hay
// responsable o detalles de impresora.
const populatedEquipmentQuery = `
	SELECT e.id, e.display_id, e.equipment_type_id, e.brand, e.model, e.serial_number,
	       e.current_status_id, e.current_location_id, e.current_responsible_id, e.assigned_station_id,
	       e.estimated_value, e.purchase_date, e.warranty_end_date, e.notes, e.created_at, e.updated_at,
	       t.name, s.name,
	       l.id, l.building, l.floor, l.service_area, l.internal_location, l.description, l.created_at, l.updated_at,
	       resp.id, resp.full_name, resp.phone, resp.email, resp.user_id,
	       pd.profile, pd.printer_type
	FROM equipment e
	JOIN equipment_types t ON t.id = e.equipment_type_id
	JOIN equipment_status s ON s.id = e.current_status_id
	JOIN locations l ON l.id = e.current_location_id
	LEFT JOIN responsables resp ON resp.id = e.current_responsible_id
	LEFT JOIN printer_details pd ON pd.equipment_id = e.id`

func scanPopulatedEquipment(row pgx.Row) (*entity.PopulatedEquipment, error) {
	var p entity.PopulatedEquipment
	var respID, respName, respPhone, respEmail, respUserID *string
	var printerProfile, printerType *string
	err := row.Scan(
		&p.ID, &p.DisplayID, &p.EquipmentTypeID, &p.Brand, &p.Model, &p.SerialNumber,
		&p.CurrentStatusID, &p.CurrentLocationID, &p.CurrentResponsibleID, &p.AssignedStationID,
		&p.EstimatedValue, &p.PurchaseDate, &p.WarrantyEndDate, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		&p.TypeName, &p.StatusName,
		&p.Location.ID, &p.Location.Building, &p.Location.Floor, &p.Location.ServiceArea,
		&p.Location.InternalLocation, &p.Location.Description, &p.Location.CreatedAt, &p.Location.UpdatedAt,
		&respID, &respName, &respPhone, &respEmail, &respUserID,
		&printerProfile, &printerType,
	)
	if err != nil {
		return nil, err
	}
	if respID != nil {
		p.Responsible = &entity.Responsable{
			ID:       *respID,
			FullName: deref(respName),
			Phone:    deref(respPhone),
			Email:    deref(respEmail),
			UserID:   respUserID,
		}
	}
	if printerProfile != nil || printerType != nil {
		p.Printer = &entity.PrinterDetails{
			EquipmentID: p.ID,
			Profile:     deref(printerProfile),
			PrinterType: deref(printerType),
		}
	}
	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetPopulatedByID obtiene un equipo con sus relaciones resueltas.
func (r *EquipmentRepo) GetPopulatedByID(id string) (*entity.PopulatedEquipment, error) {
	p, err := scanPopulatedEquipment(r.q.QueryRow(context.Background(),
		populatedEquipmentQuery+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get populated equipment: %w", err)
	}
	return p, nil
}

// Update actualiza un equipo existente. DisplayID y tipo no cambian después del alta.
func (r *EquipmentRepo) Update(equipment *entity.Equipment) error {
	query := `
		UPDATE equipment SET brand = $2, model = $3, serial_number = $4, current_status_id = $5,
		       current_location_id = $6, current_responsible_id = $7, estimated_value = $8,
		       purchase_date = $9, warranty_end_date = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.Brand, equipment.Model, equipment.SerialNumber,
		equipment.CurrentStatusID, equipment.CurrentLocationID, equipment.CurrentResponsibleID,
		equipment.EstimatedValue, equipment.PurchaseDate, equipment.WarrantyEndDate,
		equipment.Notes, equipment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update equipment: %w", err)
	}
	return nil
}

// ListPopulated lista equipos con relaciones resueltas, paginado.
func (r *EquipmentRepo) ListPopulated(limit, offset int) ([]*entity.PopulatedEquipment, error) {
	rows, err := r.q.Query(context.Background(),
		populatedEquipmentQuery+` ORDER BY e.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()
	var list []*entity.PopulatedEquipment
	for rows.Next() {
		p, err := scanPopulatedEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un equipo por ID. Los detalles de impresora caen por ON DELETE CASCADE.
func (r *EquipmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete equipment: %w", err)
	}
	return nil
}

// AssignToStation fija o limpia (nil) la estación a la que pertenece el equipo.
func (r *EquipmentRepo) AssignToStation(equipmentID string, stationID *string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE equipment SET assigned_station_id = $2, updated_at = now() WHERE id = $1`,
		equipmentID, stationID,
	)
	if err != nil {
		return fmt.Errorf("assign equipment to station: %w", err)
	}
	return nil
}

// UpsertPrinterDetails inserta o actualiza los atributos de impresora del equipo.
func (r *EquipmentRepo) UpsertPrinterDetails(details *entity.PrinterDetails) error {
	query := `
		INSERT INTO printer_details (equipment_id, profile, printer_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (equipment_id) DO UPDATE SET profile = $2, printer_type = $3, updated_at = $5`
	_, err := r.q.Exec(context.Background(), query,
		details.EquipmentID, details.Profile, details.PrinterType, details.CreatedAt, details.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert printer details: %w", err)
	}
	return nil
}

// GetPrinterDetails obtiene los atributos de impresora de un equipo.
func (r *EquipmentRepo) GetPrinterDetails(equipmentID string) (*entity.PrinterDetails, error) {
	var d entity.PrinterDetails
	err := r.q.QueryRow(context.Background(),
		`SELECT equipment_id, profile, printer_type, created_at, updated_at FROM printer_details WHERE equipment_id = $1`,
		equipmentID,
	).Scan(&d.EquipmentID, &d.Profile, &d.PrinterType, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get printer details: %w", err)
	}
	return &d, nil
}
