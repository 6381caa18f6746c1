package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/domain"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

// ResguardoUseCase consulta y administración de los registros de resguardo.
// La generación de los documentos vive en application/generation.
type ResguardoUseCase struct {
	repo repository.ResguardoRepository
}

// NewResguardoUseCase construye el caso de uso.
func NewResguardoUseCase(repo repository.ResguardoRepository) *ResguardoUseCase {
	return &ResguardoUseCase{repo: repo}
}

// Create registra manualmente un resguardo (por ejemplo, uno emitido en papel).
// Debe referirse a un equipo o a una estación, no a ambos ni a ninguno.
func (uc *ResguardoUseCase) Create(userID string, in dto.CreateResguardoRequest) (*dto.ResguardoResponse, error) {
	if (in.EquipmentID == nil) == (in.StationID == nil) {
		return nil, domain.ErrInvalidInput
	}
	res := &entity.Resguardo{
		ID:            uuid.New().String(),
		ResguardoType: in.ResguardoType,
		EquipmentID:   in.EquipmentID,
		StationID:     in.StationID,
		GeneratedByID: userID,
		DocumentURL:   in.DocumentURL,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(res); err != nil {
		return nil, err
	}
	resp := toResguardoResponse(res)
	return &resp, nil
}

func (uc *ResguardoUseCase) GetByID(id string) (*dto.ResguardoResponse, error) {
	res, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	resp := toResguardoResponse(res)
	return &resp, nil
}

// List lista resguardos, con filtros opcionales por equipo o estación.
func (uc *ResguardoUseCase) List(equipmentID, stationID *string, limit, offset int) (*dto.ResguardoListResponse, error) {
	list, err := uc.repo.List(equipmentID, stationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ResguardoResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toResguardoResponse(r))
	}
	return &dto.ResguardoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// SetSigned marca un resguardo como firmado o revierte la marca.
func (uc *ResguardoUseCase) SetSigned(id string, signed bool) (*dto.ResguardoResponse, error) {
	res, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	if err := uc.repo.SetSigned(id, signed); err != nil {
		return nil, err
	}
	res.IsSigned = signed
	resp := toResguardoResponse(res)
	return &resp, nil
}
