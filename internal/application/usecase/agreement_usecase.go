package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// dateLayout formato de fecha de los formularios (YYYY-MM-DD).
const dateLayout = "2006-01-02"

// AgreementUseCase CRUD de contratos. La contraparte referenciada debe
// pertenecer al mismo dueño; usar una ajena es ErrForbidden.
type AgreementUseCase struct {
	repo             repository.AgreementRepository
	counterpartyRepo repository.CounterpartyRepository
}

// NewAgreementUseCase construye el caso de uso.
func NewAgreementUseCase(repo repository.AgreementRepository, counterpartyRepo repository.CounterpartyRepository) *AgreementUseCase {
	return &AgreementUseCase{repo: repo, counterpartyRepo: counterpartyRepo}
}

// Create registra un contrato para el dueño.
func (uc *AgreementUseCase) Create(ownerID string, in dto.CreateAgreementRequest) (*dto.AgreementResponse, error) {
	if err := uc.checkCounterparty(ownerID, in.CounterpartyID); err != nil {
		return nil, err
	}
	dateSigned, err := time.Parse(dateLayout, in.DateSigned)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	a := &entity.Agreement{
		ID:             uuid.New().String(),
		UserID:         ownerID,
		ContractNumber: in.ContractNumber,
		DateSigned:     dateSigned,
		CounterpartyID: in.CounterpartyID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAgreementResponse(a), nil
}

// GetByID obtiene un contrato del dueño.
func (uc *AgreementUseCase) GetByID(ownerID, id string) (*dto.AgreementResponse, error) {
	a, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return toAgreementResponse(a), nil
}

// List lista los contratos del dueño con paginación.
func (uc *AgreementUseCase) List(ownerID string, limit, offset int) (*dto.AgreementListResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.AgreementListResponse{
		Items: make([]dto.AgreementResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, a := range list {
		out.Items = append(out.Items, *toAgreementResponse(a))
	}
	return out, nil
}

// Update actualiza un contrato del dueño.
func (uc *AgreementUseCase) Update(ownerID, id string, in dto.UpdateAgreementRequest) (*dto.AgreementResponse, error) {
	a, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkCounterparty(ownerID, in.CounterpartyID); err != nil {
		return nil, err
	}
	dateSigned, err := time.Parse(dateLayout, in.DateSigned)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	a.ContractNumber = in.ContractNumber
	a.DateSigned = dateSigned
	a.CounterpartyID = in.CounterpartyID
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toAgreementResponse(a), nil
}

// Delete elimina un contrato del dueño.
func (uc *AgreementUseCase) Delete(ownerID, id string) error {
	a, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteByIDAndOwner(id, ownerID)
}

// checkCounterparty verifica que la contraparte exista y sea del dueño.
func (uc *AgreementUseCase) checkCounterparty(ownerID, counterpartyID string) error {
	cp, err := uc.counterpartyRepo.GetByIDAndOwner(counterpartyID, ownerID)
	if err != nil {
		return err
	}
	if cp == nil {
		return domain.ErrForbidden
	}
	return nil
}

func toAgreementResponse(a *entity.Agreement) *dto.AgreementResponse {
	return &dto.AgreementResponse{
		ID:             a.ID,
		ContractNumber: a.ContractNumber,
		DateSigned:     a.DateSigned,
		CounterpartyID: a.CounterpartyID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
