package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/domain"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
)

// ResponsableUseCase casos de uso CRUD para responsables de resguardo.
type ResponsableUseCase struct {
	repo repository.ResponsableRepository
}

// NewResponsableUseCase construye el caso de uso.
func NewResponsableUseCase(repo repository.ResponsableRepository) *ResponsableUseCase {
	return &ResponsableUseCase{repo: repo}
}

func (uc *ResponsableUseCase) Create(in dto.CreateResponsableRequest) (*dto.ResponsableResponse, error) {
	now := time.Now()
	responsable := &entity.Responsable{
		ID:        uuid.New().String(),
		FullName:  in.FullName,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(responsable); err != nil {
		return nil, err
	}
	resp := toResponsableResponse(responsable)
	return &resp, nil
}

func (uc *ResponsableUseCase) GetByID(id string) (*dto.ResponsableResponse, error) {
	responsable, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if responsable == nil {
		return nil, nil
	}
	resp := toResponsableResponse(responsable)
	return &resp, nil
}

func (uc *ResponsableUseCase) Update(id string, in dto.UpdateResponsableRequest) (*dto.ResponsableResponse, error) {
	responsable, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if responsable == nil {
		return nil, nil
	}
	if in.FullName != nil {
		responsable.FullName = *in.FullName
	}
	if in.Phone != nil {
		responsable.Phone = *in.Phone
	}
	if in.Email != nil {
		responsable.Email = *in.Email
	}
	responsable.UpdatedAt = time.Now()
	if err := uc.repo.Update(responsable); err != nil {
		return nil, err
	}
	resp := toResponsableResponse(responsable)
	return &resp, nil
}

func (uc *ResponsableUseCase) List(limit, offset int) (*dto.ResponsableListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ResponsableResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toResponsableResponse(r))
	}
	return &dto.ResponsableListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ResponsableUseCase) Delete(id string) error {
	responsable, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if responsable == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
