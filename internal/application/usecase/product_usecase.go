package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase CRUD de productos. Fabricante, contraparte y contrato
// referenciados deben pertenecer al dueño; una referencia ajena es ErrForbidden.
type ProductUseCase struct {
	repo             repository.ProductRepository
	manufacturerRepo repository.ManufacturerRepository
	counterpartyRepo repository.CounterpartyRepository
	agreementRepo    repository.AgreementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	manufacturerRepo repository.ManufacturerRepository,
	counterpartyRepo repository.CounterpartyRepository,
	agreementRepo repository.AgreementRepository,
) *ProductUseCase {
	return &ProductUseCase{
		repo:             repo,
		manufacturerRepo: manufacturerRepo,
		counterpartyRepo: counterpartyRepo,
		agreementRepo:    agreementRepo,
	}
}

// Create registra un producto para el dueño.
func (uc *ProductUseCase) Create(ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkReferences(ownerID, in.ManufacturerID, in.CounterpartyID, in.AgreementID); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Product{
		ID:             uuid.New().String(),
		UserID:         ownerID,
		Name:           in.Name,
		Price:          in.Price,
		ManufacturerID: in.ManufacturerID,
		CounterpartyID: in.CounterpartyID,
		AgreementID:    in.AgreementID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto del dueño.
func (uc *ProductUseCase) GetByID(ownerID, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// List lista los productos del dueño con paginación.
func (uc *ProductUseCase) List(ownerID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range list {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// Update actualiza un producto del dueño, revalidando las referencias.
func (uc *ProductUseCase) Update(ownerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkReferences(ownerID, in.ManufacturerID, in.CounterpartyID, in.AgreementID); err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Price = in.Price
	p.ManufacturerID = in.ManufacturerID
	p.CounterpartyID = in.CounterpartyID
	p.AgreementID = in.AgreementID
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina un producto del dueño.
func (uc *ProductUseCase) Delete(ownerID, id string) error {
	p, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteByIDAndOwner(id, ownerID)
}

// checkReferences verifica que fabricante, contraparte y contrato existan y
// pertenezcan al dueño. Una referencia ajena o inexistente es ErrForbidden,
// igual que en el sistema original (403 por entidad relacionada).
func (uc *ProductUseCase) checkReferences(ownerID, manufacturerID, counterpartyID, agreementID string) error {
	m, err := uc.manufacturerRepo.GetByIDAndOwner(manufacturerID, ownerID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrForbidden
	}
	cp, err := uc.counterpartyRepo.GetByIDAndOwner(counterpartyID, ownerID)
	if err != nil {
		return err
	}
	if cp == nil {
		return domain.ErrForbidden
	}
	a, err := uc.agreementRepo.GetByIDAndOwner(agreementID, ownerID)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrForbidden
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		ManufacturerID: p.ManufacturerID,
		CounterpartyID: p.CounterpartyID,
		AgreementID:    p.AgreementID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
