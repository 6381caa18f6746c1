package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/domain"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

// Nombre de tipo con tabla satélite de atributos.
const typePrinter = "Impresora"

// EquipmentUseCase casos de uso CRUD para equipos individuales.
type EquipmentUseCase struct {
	repo      repository.EquipmentRepository
	catalog   repository.CatalogRepository
	movements repository.MovementRepository
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(
	repo repository.EquipmentRepository,
	catalog repository.CatalogRepository,
	movements repository.MovementRepository,
) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, catalog: catalog, movements: movements}
}

// Create da de alta un equipo y registra el movimiento en bitácora.
// Si el tipo es Impresora, persiste también sus atributos satélite.
func (uc *EquipmentUseCase) Create(userID string, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	existing, _ := uc.repo.GetByDisplayID(in.DisplayID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	eqType, err := uc.catalog.GetTypeByID(in.EquipmentTypeID)
	if err != nil {
		return nil, err
	}
	if eqType == nil {
		return nil, domain.ErrInvalidInput
	}

	value := decimal.Zero
	if in.EstimatedValue != nil {
		value = *in.EstimatedValue
	}
	now := time.Now()
	equipment := &entity.Equipment{
		ID:                   uuid.New().String(),
		DisplayID:            in.DisplayID,
		EquipmentTypeID:      in.EquipmentTypeID,
		Brand:                in.Brand,
		Model:                in.Model,
		SerialNumber:         in.SerialNumber,
		CurrentStatusID:      in.CurrentStatusID,
		CurrentLocationID:    in.CurrentLocationID,
		CurrentResponsibleID: in.CurrentResponsibleID,
		EstimatedValue:       value,
		PurchaseDate:         in.PurchaseDate,
		WarrantyEndDate:      in.WarrantyEndDate,
		Notes:                in.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(equipment); err != nil {
		return nil, err
	}

	if eqType.Name == typePrinter && (in.PrinterProfile != "" || in.PrinterType != "") {
		details := &entity.PrinterDetails{
			EquipmentID: equipment.ID,
			Profile:     in.PrinterProfile,
			PrinterType: in.PrinterType,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.repo.UpsertPrinterDetails(details); err != nil {
			return nil, err
		}
	}

	uc.logMovement(userID, equipment.ID, entity.MovementCreate,
		fmt.Sprintf("Alta de equipo %s (%s %s)", equipment.DisplayID, equipment.Brand, equipment.Model))

	return uc.GetByID(equipment.ID)
}

// GetByID obtiene un equipo con relaciones resueltas. nil si no existe.
func (uc *EquipmentUseCase) GetByID(id string) (*dto.EquipmentResponse, error) {
	populated, err := uc.repo.GetPopulatedByID(id)
	if err != nil {
		return nil, err
	}
	if populated == nil {
		return nil, nil
	}
	resp := toEquipmentResponse(populated)
	return &resp, nil
}

// Update actualiza un equipo. DisplayID y tipo no cambian después del alta.
func (uc *EquipmentUseCase) Update(userID, id string, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	equipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, nil
	}
	if in.Brand != nil {
		equipment.Brand = *in.Brand
	}
	if in.Model != nil {
		equipment.Model = *in.Model
	}
	if in.SerialNumber != nil {
		equipment.SerialNumber = *in.SerialNumber
	}
	if in.CurrentStatusID != nil {
		equipment.CurrentStatusID = *in.CurrentStatusID
	}
	if in.CurrentLocationID != nil {
		equipment.CurrentLocationID = *in.CurrentLocationID
	}
	if in.CurrentResponsibleID != nil {
		equipment.CurrentResponsibleID = in.CurrentResponsibleID
	}
	if in.EstimatedValue != nil {
		equipment.EstimatedValue = *in.EstimatedValue
	}
	if in.PurchaseDate != nil {
		equipment.PurchaseDate = in.PurchaseDate
	}
	if in.WarrantyEndDate != nil {
		equipment.WarrantyEndDate = in.WarrantyEndDate
	}
	if in.Notes != nil {
		equipment.Notes = *in.Notes
	}
	equipment.UpdatedAt = time.Now()
	if err := uc.repo.Update(equipment); err != nil {
		return nil, err
	}

	if in.PrinterProfile != nil || in.PrinterType != nil {
		details, err := uc.repo.GetPrinterDetails(id)
		if err != nil {
			return nil, err
		}
		if details == nil {
			details = &entity.PrinterDetails{EquipmentID: id, CreatedAt: time.Now()}
		}
		if in.PrinterProfile != nil {
			details.Profile = *in.PrinterProfile
		}
		if in.PrinterType != nil {
			details.PrinterType = *in.PrinterType
		}
		details.UpdatedAt = time.Now()
		if err := uc.repo.UpsertPrinterDetails(details); err != nil {
			return nil, err
		}
	}

	uc.logMovement(userID, id, entity.MovementUpdate,
		fmt.Sprintf("Modificación de equipo %s", equipment.DisplayID))

	return uc.GetByID(id)
}

// List lista equipos con relaciones resueltas, paginado.
func (uc *EquipmentUseCase) List(limit, offset int) (*dto.EquipmentListResponse, error) {
	list, err := uc.repo.ListPopulated(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipmentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toEquipmentResponse(p))
	}
	return &dto.EquipmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete da de baja un equipo. Rechaza la baja si está integrado a una estación.
func (uc *EquipmentUseCase) Delete(userID, id string) error {
	equipment, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if equipment == nil {
		return domain.ErrNotFound
	}
	if equipment.AssignedStationID != nil {
		return domain.ErrEquipoAsignado
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}

	uc.logMovement(userID, id, entity.MovementDelete,
		fmt.Sprintf("Baja de equipo %s (%s %s)", equipment.DisplayID, equipment.Brand, equipment.Model))
	return nil
}

// logMovement registra la operación en bitácora. Best effort: el CRUD ya se aplicó.
func (uc *EquipmentUseCase) logMovement(userID, equipmentID, movType, description string) {
	now := time.Now()
	_ = uc.movements.Create(&entity.Movement{
		ID:           uuid.New().String(),
		UserID:       userID,
		Timestamp:    now,
		MovementType: movType,
		Description:  description,
		EquipmentID:  &equipmentID,
		CreatedAt:    now,
	})
}
