package usecase

import (
	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

// CatalogUseCase lectura de los catálogos de tipos y estados de equipo.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (uc *CatalogUseCase) ListTypes() (*dto.CatalogListResponse, error) {
	list, err := uc.repo.ListEquipmentTypes()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogEntryResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.CatalogEntryResponse{ID: t.ID, Name: t.Name, Description: t.Description})
	}
	return &dto.CatalogListResponse{Items: items}, nil
}

func (uc *CatalogUseCase) ListStatuses() (*dto.CatalogListResponse, error) {
	list, err := uc.repo.ListEquipmentStatuses()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogEntryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.CatalogEntryResponse{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	return &dto.CatalogListResponse{Items: items}, nil
}
