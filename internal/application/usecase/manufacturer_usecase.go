package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ManufacturerUseCase CRUD de fabricantes, siempre filtrado por dueño.
type ManufacturerUseCase struct {
	repo repository.ManufacturerRepository
}

// NewManufacturerUseCase construye el caso de uso.
func NewManufacturerUseCase(repo repository.ManufacturerRepository) *ManufacturerUseCase {
	return &ManufacturerUseCase{repo: repo}
}

// Create registra un fabricante para el dueño.
func (uc *ManufacturerUseCase) Create(ownerID string, in dto.CreateManufacturerRequest) (*dto.ManufacturerResponse, error) {
	now := time.Now()
	m := &entity.Manufacturer{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Manager:     in.Manager,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toManufacturerResponse(m), nil
}

// GetByID obtiene un fabricante del dueño.
func (uc *ManufacturerUseCase) GetByID(ownerID, id string) (*dto.ManufacturerResponse, error) {
	m, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toManufacturerResponse(m), nil
}

// List lista los fabricantes del dueño con paginación.
func (uc *ManufacturerUseCase) List(ownerID string, limit, offset int) (*dto.ManufacturerListResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ManufacturerListResponse{
		Items: make([]dto.ManufacturerResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, m := range list {
		out.Items = append(out.Items, *toManufacturerResponse(m))
	}
	return out, nil
}

// Update actualiza un fabricante del dueño.
func (uc *ManufacturerUseCase) Update(ownerID, id string, in dto.UpdateManufacturerRequest) (*dto.ManufacturerResponse, error) {
	m, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	m.Name = in.Name
	m.Address = in.Address
	m.PhoneNumber = in.PhoneNumber
	m.Manager = in.Manager
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toManufacturerResponse(m), nil
}

// Delete elimina un fabricante del dueño.
func (uc *ManufacturerUseCase) Delete(ownerID, id string) error {
	m, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteByIDAndOwner(id, ownerID)
}

func toManufacturerResponse(m *entity.Manufacturer) *dto.ManufacturerResponse {
	return &dto.ManufacturerResponse{
		ID:          m.ID,
		Name:        m.Name,
		Address:     m.Address,
		PhoneNumber: m.PhoneNumber,
		Manager:     m.Manager,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
