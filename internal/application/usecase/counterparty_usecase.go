package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// CounterpartyUseCase CRUD de contrapartes, siempre filtrado por dueño.
type CounterpartyUseCase struct {
	repo repository.CounterpartyRepository
}

// NewCounterpartyUseCase construye el caso de uso.
func NewCounterpartyUseCase(repo repository.CounterpartyRepository) *CounterpartyUseCase {
	return &CounterpartyUseCase{repo: repo}
}

// Create registra una contraparte para el dueño.
func (uc *CounterpartyUseCase) Create(ownerID string, in dto.CreateCounterpartyRequest) (*dto.CounterpartyResponse, error) {
	now := time.Now()
	cp := &entity.Counterparty{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(cp); err != nil {
		return nil, err
	}
	return toCounterpartyResponse(cp), nil
}

// GetByID obtiene una contraparte del dueño.
func (uc *CounterpartyUseCase) GetByID(ownerID, id string) (*dto.CounterpartyResponse, error) {
	cp, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if cp == nil {
		return nil, domain.ErrNotFound
	}
	return toCounterpartyResponse(cp), nil
}

// List lista las contrapartes del dueño con paginación.
func (uc *CounterpartyUseCase) List(ownerID string, limit, offset int) (*dto.CounterpartyListResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.CounterpartyListResponse{
		Items: make([]dto.CounterpartyResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, cp := range list {
		out.Items = append(out.Items, *toCounterpartyResponse(cp))
	}
	return out, nil
}

// Update actualiza una contraparte del dueño.
func (uc *CounterpartyUseCase) Update(ownerID, id string, in dto.UpdateCounterpartyRequest) (*dto.CounterpartyResponse, error) {
	cp, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if cp == nil {
		return nil, domain.ErrNotFound
	}
	cp.Name = in.Name
	cp.Address = in.Address
	cp.PhoneNumber = in.PhoneNumber
	cp.UpdatedAt = time.Now()
	if err := uc.repo.Update(cp); err != nil {
		return nil, err
	}
	return toCounterpartyResponse(cp), nil
}

// Delete elimina una contraparte del dueño.
func (uc *CounterpartyUseCase) Delete(ownerID, id string) error {
	cp, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return err
	}
	if cp == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteByIDAndOwner(id, ownerID)
}

func toCounterpartyResponse(cp *entity.Counterparty) *dto.CounterpartyResponse {
	return &dto.CounterpartyResponse{
		ID:          cp.ID,
		Name:        cp.Name,
		Address:     cp.Address,
		PhoneNumber: cp.PhoneNumber,
		CreatedAt:   cp.CreatedAt,
		UpdatedAt:   cp.UpdatedAt,
	}
}
