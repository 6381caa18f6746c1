package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/domain"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

// StationTxRunner ejecuta el callback dentro de una transacción con repos
// atados a ella. Crear una estación toca dos equipos y la estación misma;
// debe ser atómico.
type StationTxRunner interface {
	Run(ctx context.Context, fn func(
		equipmentRepo repository.EquipmentRepository,
		stationRepo repository.StationRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

// StationUseCase casos de uso para estaciones de cómputo (CPU + Monitor).
type StationUseCase struct {
	stations repository.StationRepository
	catalog  repository.CatalogRepository
	tx       StationTxRunner
}

// NewStationUseCase construye el caso de uso.
func NewStationUseCase(
	stations repository.StationRepository,
	catalog repository.CatalogRepository,
	tx StationTxRunner,
) *StationUseCase {
	return &StationUseCase{stations: stations, catalog: catalog, tx: tx}
}

// validateComponent verifica que el equipo exista, sea del tipo esperado
// (CPU o Monitor) y no esté ya integrado a otra estación.
func validateComponent(
	equipmentRepo repository.EquipmentRepository,
	catalog repository.CatalogRepository,
	equipmentID, expectedType, allowStationID string,
) (*entity.Equipment, error) {
	equipment, err := equipmentRepo.GetByID(equipmentID)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, domain.ErrNotFound
	}
	eqType, err := catalog.GetTypeByID(equipment.EquipmentTypeID)
	if err != nil {
		return nil, err
	}
	if eqType == nil || eqType.Name != expectedType {
		return nil, domain.ErrTipoIncompatible
	}
	if equipment.AssignedStationID != nil && *equipment.AssignedStationID != allowStationID {
		return nil, domain.ErrEquipoAsignado
	}
	return equipment, nil
}

// Create arma una estación: valida tipos de CPU y Monitor, crea la estación,
// marca ambos equipos como asignados y registra el movimiento. Todo en una
// transacción.
func (uc *StationUseCase) Create(ctx context.Context, userID string, in dto.CreateStationRequest) (*dto.StationResponse, error) {
	if in.CPUID == in.MonitorID {
		return nil, domain.ErrInvalidInput
	}

	stationID := uuid.New().String()
	now := time.Now()

	err := uc.tx.Run(ctx, func(
		equipmentRepo repository.EquipmentRepository,
		stationRepo repository.StationRepository,
		movementRepo repository.MovementRepository,
	) error {
		if _, err := validateComponent(equipmentRepo, uc.catalog, in.CPUID, entity.TypeCPU, ""); err != nil {
			return err
		}
		if _, err := validateComponent(equipmentRepo, uc.catalog, in.MonitorID, entity.TypeMonitor, ""); err != nil {
			return err
		}

		station := &entity.Station{
			ID:                   stationID,
			DisplayID:            in.DisplayID,
			Name:                 in.Name,
			CPUID:                in.CPUID,
			MonitorID:            in.MonitorID,
			CurrentResponsibleID: in.CurrentResponsibleID,
			CurrentLocationID:    in.CurrentLocationID,
			StationStatusID:      in.StationStatusID,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := stationRepo.Create(station); err != nil {
			return err
		}
		if err := equipmentRepo.AssignToStation(in.CPUID, &stationID); err != nil {
			return err
		}
		if err := equipmentRepo.AssignToStation(in.MonitorID, &stationID); err != nil {
			return err
		}
		if len(in.Accessories) > 0 {
			if err := stationRepo.ReplaceAccessories(stationID, in.Accessories); err != nil {
				return err
			}
		}
		return movementRepo.Create(&entity.Movement{
			ID:           uuid.New().String(),
			UserID:       userID,
			Timestamp:    now,
			MovementType: entity.MovementCreate,
			Description:  fmt.Sprintf("Alta de estación %s (%s)", in.DisplayID, in.Name),
			StationID:    &stationID,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}

	return uc.GetByID(stationID)
}

// GetByID obtiene una estación con relaciones resueltas. nil si no existe.
func (uc *StationUseCase) GetByID(id string) (*dto.StationResponse, error) {
	populated, err := uc.stations.GetPopulatedByID(id)
	if err != nil {
		return nil, err
	}
	if populated == nil {
		return nil, nil
	}
	resp := toStationResponse(populated)
	return &resp, nil
}

// Update reconfigura una estación. Si cambian CPU o Monitor, desasigna los
// anteriores y asigna los nuevos dentro de la misma transacción.
func (uc *StationUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateStationRequest) (*dto.StationResponse, error) {
	station, err := uc.stations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, nil
	}

	err = uc.tx.Run(ctx, func(
		equipmentRepo repository.EquipmentRepository,
		stationRepo repository.StationRepository,
		movementRepo repository.MovementRepository,
	) error {
		if in.CPUID != nil && *in.CPUID != station.CPUID {
			if _, err := validateComponent(equipmentRepo, uc.catalog, *in.CPUID, entity.TypeCPU, id); err != nil {
				return err
			}
			if err := equipmentRepo.AssignToStation(station.CPUID, nil); err != nil {
				return err
			}
			if err := equipmentRepo.AssignToStation(*in.CPUID, &id); err != nil {
				return err
			}
			station.CPUID = *in.CPUID
		}
		if in.MonitorID != nil && *in.MonitorID != station.MonitorID {
			if _, err := validateComponent(equipmentRepo, uc.catalog, *in.MonitorID, entity.TypeMonitor, id); err != nil {
				return err
			}
			if err := equipmentRepo.AssignToStation(station.MonitorID, nil); err != nil {
				return err
			}
			if err := equipmentRepo.AssignToStation(*in.MonitorID, &id); err != nil {
				return err
			}
			station.MonitorID = *in.MonitorID
		}
		if in.Name != nil {
			station.Name = *in.Name
		}
		if in.CurrentResponsibleID != nil {
			station.CurrentResponsibleID = *in.CurrentResponsibleID
		}
		if in.CurrentLocationID != nil {
			station.CurrentLocationID = *in.CurrentLocationID
		}
		if in.StationStatusID != nil {
			station.StationStatusID = *in.StationStatusID
		}
		station.UpdatedAt = time.Now()
		if err := stationRepo.Update(station); err != nil {
			return err
		}
		if in.Accessories != nil {
			if err := stationRepo.ReplaceAccessories(id, *in.Accessories); err != nil {
				return err
			}
		}
		now := time.Now()
		return movementRepo.Create(&entity.Movement{
			ID:           uuid.New().String(),
			UserID:       userID,
			Timestamp:    now,
			MovementType: entity.MovementUpdate,
			Description:  fmt.Sprintf("Modificación de estación %s", station.DisplayID),
			StationID:    &id,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}

	return uc.GetByID(id)
}

// List lista estaciones con relaciones resueltas, paginado.
func (uc *StationUseCase) List(limit, offset int) (*dto.StationListResponse, error) {
	list, err := uc.stations.ListPopulated(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StationResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toStationResponse(p))
	}
	return &dto.StationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete desarma una estación: libera CPU y Monitor y elimina el registro,
// todo en una transacción.
func (uc *StationUseCase) Delete(ctx context.Context, userID, id string) error {
	station, err := uc.stations.GetByID(id)
	if err != nil {
		return err
	}
	if station == nil {
		return domain.ErrNotFound
	}

	return uc.tx.Run(ctx, func(
		equipmentRepo repository.EquipmentRepository,
		stationRepo repository.StationRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := equipmentRepo.AssignToStation(station.CPUID, nil); err != nil {
			return err
		}
		if err := equipmentRepo.AssignToStation(station.MonitorID, nil); err != nil {
			return err
		}
		if err := stationRepo.Delete(id); err != nil {
			return err
		}
		now := time.Now()
		return movementRepo.Create(&entity.Movement{
			ID:           uuid.New().String(),
			UserID:       userID,
			Timestamp:    now,
			MovementType: entity.MovementDelete,
			Description:  fmt.Sprintf("Baja de estación %s (%s)", station.DisplayID, station.Name),
			StationID:    &id,
			CreatedAt:    now,
		})
	})
}
