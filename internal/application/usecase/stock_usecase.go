package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// StockUseCase ajustes directos de existencias (alta con suma, fijado, borrado).
// Las mutaciones derivadas de ventas NO pasan por aquí: son del libro de ventas.
type StockUseCase struct {
	repo           repository.StockRepository
	productRepo    repository.ProductRepository
	defaultMinimum int64
}

// NewStockUseCase construye el caso de uso. defaultMinimum es el umbral de
// alerta asignado a filas nuevas.
func NewStockUseCase(repo repository.StockRepository, productRepo repository.ProductRepository, defaultMinimum int64) *StockUseCase {
	return &StockUseCase{repo: repo, productRepo: productRepo, defaultMinimum: defaultMinimum}
}

// Create registra existencias: si el producto ya tiene fila de stock, suma la
// cantidad; si no, crea la fila (upsert-add del sistema original).
func (uc *StockUseCase) Create(ownerID string, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	product, err := uc.productRepo.GetByIDAndOwner(in.ProductID, ownerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	stock, err := uc.repo.GetByProductAndOwner(in.ProductID, ownerID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		stock = &entity.Stock{
			ID:              uuid.New().String(),
			UserID:          ownerID,
			ProductID:       in.ProductID,
			Quantity:        in.Quantity,
			MinimumQuantity: uc.defaultMinimum,
			UpdatedAt:       now,
		}
	} else {
		stock.Quantity += in.Quantity
		stock.UpdatedAt = now
	}
	if err := uc.repo.Upsert(stock); err != nil {
		return nil, err
	}
	resp := toStockResponse(stock)
	resp.ProductName = product.Name
	return resp, nil
}

// List lista el stock del dueño con nombres de producto.
func (uc *StockUseCase) List(ownerID string) (*dto.StockListResponse, error) {
	details, err := uc.repo.ListDetailByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := &dto.StockListResponse{Items: make([]dto.StockResponse, 0, len(details))}
	for _, d := range details {
		resp := toStockResponse(&d.Stock)
		resp.ProductName = d.ProductName
		out.Items = append(out.Items, *resp)
	}
	return out, nil
}

// GetByID obtiene una fila de stock del dueño.
func (uc *StockUseCase) GetByID(ownerID, id string) (*dto.StockResponse, error) {
	stock, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	return toStockResponse(stock), nil
}

// Update fija cantidad (y opcionalmente umbral) de una fila de stock, pudiendo
// reapuntarla a otro producto del dueño.
func (uc *StockUseCase) Update(ownerID, id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	stock, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByIDAndOwner(in.ProductID, ownerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	stock.ProductID = in.ProductID
	stock.Quantity = in.Quantity
	if in.MinimumQuantity != nil {
		stock.MinimumQuantity = *in.MinimumQuantity
	}
	stock.UpdatedAt = time.Now()
	if err := uc.repo.Update(stock); err != nil {
		return nil, err
	}
	resp := toStockResponse(stock)
	resp.ProductName = product.Name
	return resp, nil
}

// Delete elimina una fila de stock del dueño.
func (uc *StockUseCase) Delete(ownerID, id string) error {
	stock, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return err
	}
	if stock == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteByIDAndOwner(id, ownerID)
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:              s.ID,
		ProductID:       s.ProductID,
		Quantity:        s.Quantity,
		MinimumQuantity: s.MinimumQuantity,
		UpdatedAt:       s.UpdatedAt,
	}
}
