package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/domain"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

// DepartmentUseCase casos de uso CRUD para direcciones administrativas.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

func (uc *DepartmentUseCase) Create(in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.DepartmentActive
	}
	now := time.Now()
	department := &entity.AdministrativeDepartment{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(department); err != nil {
		return nil, err
	}
	resp := toDepartmentResponse(department)
	return &resp, nil
}

func (uc *DepartmentUseCase) GetByID(id string) (*dto.DepartmentResponse, error) {
	department, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, nil
	}
	resp := toDepartmentResponse(department)
	return &resp, nil
}

func (uc *DepartmentUseCase) Update(id string, in dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	department, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, nil
	}
	if in.Name != nil {
		department.Name = *in.Name
	}
	if in.Description != nil {
		department.Description = *in.Description
	}
	if in.Status != nil {
		if *in.Status != entity.DepartmentActive && *in.Status != entity.DepartmentInactive {
			return nil, domain.ErrInvalidInput
		}
		department.Status = *in.Status
	}
	department.UpdatedAt = time.Now()
	if err := uc.repo.Update(department); err != nil {
		return nil, err
	}
	resp := toDepartmentResponse(department)
	return &resp, nil
}

// List lista direcciones; con onlyActive filtra las de estado Activa.
func (uc *DepartmentUseCase) List(onlyActive bool, limit, offset int) (*dto.DepartmentListResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, toDepartmentResponse(d))
	}
	return &dto.DepartmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *DepartmentUseCase) Delete(id string) error {
	department, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if department == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
