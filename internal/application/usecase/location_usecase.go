package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/domain"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones físicas.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	now := time.Now()
	location := &entity.Location{
		ID:               uuid.New().String(),
		Building:         in.Building,
		Floor:            in.Floor,
		ServiceArea:      in.ServiceArea,
		InternalLocation: in.InternalLocation,
		Description:      in.Description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	resp := toLocationResponse(location)
	return &resp, nil
}

func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	resp := toLocationResponse(location)
	return &resp, nil
}

func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Building != nil {
		location.Building = *in.Building
	}
	if in.Floor != nil {
		location.Floor = *in.Floor
	}
	if in.ServiceArea != nil {
		location.ServiceArea = *in.ServiceArea
	}
	if in.InternalLocation != nil {
		location.InternalLocation = *in.InternalLocation
	}
	if in.Description != nil {
		location.Description = *in.Description
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	resp := toLocationResponse(location)
	return &resp, nil
}

func (uc *LocationUseCase) List(limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *LocationUseCase) Delete(id string) error {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
