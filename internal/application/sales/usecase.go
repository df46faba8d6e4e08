package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// SaleUseCase es el libro de ventas: acopla cada mutación de una venta con el
// ajuste de stock correspondiente, dentro de una transacción con bloqueo de
// fila (SELECT FOR UPDATE), y dispara alertas de stock bajo tras el commit.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	notifier LowStockNotifier
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, notifier LowStockNotifier) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, notifier: notifier}
}

// stockAlert alerta pendiente, acumulada dentro de la tx y despachada tras el commit.
type stockAlert struct {
	productName string
	quantity    int64
	minimum     int64
}

// Create registra una venta: verifica producto y stock del dueño, exige
// disponibilidad, inserta la venta con total = precio × cantidad y descuenta
// el stock. Todo en una transacción.
func (uc *SaleUseCase) Create(ctx context.Context, ownerID, ownerEmail string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	var productName string
	var alerts []stockAlert

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByIDAndOwner(in.ProductID, ownerID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		stock, err := stockRepo.GetForUpdate(in.ProductID, ownerID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		if stock.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		sale = &entity.Sale{
			ID:         uuid.New().String(),
			UserID:     ownerID,
			ProductID:  product.ID,
			Quantity:   in.Quantity,
			TotalPrice: product.Price.Mul(decimal.NewFromInt(in.Quantity)),
			DateSold:   now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		stock.Quantity -= in.Quantity
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}

		productName = product.Name
		if stock.Quantity < stock.MinimumQuantity {
			alerts = append(alerts, stockAlert{product.Name, stock.Quantity, stock.MinimumQuantity})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.dispatch(ownerEmail, alerts)
	resp := toSaleResponse(sale)
	resp.ProductName = productName
	return resp, nil
}

// Edit modifica una venta existente (cantidad y/o producto) y reajusta stock:
// devuelve al producto anterior la cantidad vieja y descuenta del nuevo la
// cantidad nueva; una edición sobre el mismo producto colapsa a un único
// ajuste +vieja −nueva sobre la fila bloqueada. La verificación de
// disponibilidad se hace sobre el delta (cantidad nueva − vieja) contra el
// stock actual del producto destino, sin contar la devolución.
func (uc *SaleUseCase) Edit(ctx context.Context, ownerID, ownerEmail, saleID string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if saleID == "" || in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	var productName string
	var alerts []stockAlert

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		sale, err = saleRepo.GetByIDAndOwner(saleID, ownerID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		sameProduct := in.ProductID == sale.ProductID
		oldProductID := sale.ProductID

		// La fila del producto anterior puede faltar (stock borrado a mano);
		// en ese caso no hay nada que devolver.
		oldStock, err := stockRepo.GetForUpdate(oldProductID, ownerID)
		if err != nil {
			return err
		}
		newStock := oldStock
		if !sameProduct {
			newStock, err = stockRepo.GetForUpdate(in.ProductID, ownerID)
			if err != nil {
				return err
			}
		}
		if newStock == nil {
			return domain.ErrNotFound
		}
		newProduct, err := productRepo.GetByIDAndOwner(in.ProductID, ownerID)
		if err != nil {
			return err
		}
		if newProduct == nil {
			return domain.ErrNotFound
		}

		delta := in.Quantity - sale.Quantity
		if delta > 0 && newStock.Quantity < delta {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		if sameProduct {
			newStock.Quantity += sale.Quantity - in.Quantity
		} else {
			if oldStock != nil {
				oldStock.Quantity += sale.Quantity
				oldStock.UpdatedAt = now
				if err := stockRepo.Upsert(oldStock); err != nil {
					return err
				}
			}
			newStock.Quantity -= in.Quantity
		}
		newStock.UpdatedAt = now
		if err := stockRepo.Upsert(newStock); err != nil {
			return err
		}

		sale.ProductID = in.ProductID
		sale.Quantity = in.Quantity
		sale.TotalPrice = newProduct.Price.Mul(decimal.NewFromInt(in.Quantity))
		if err := saleRepo.Update(sale); err != nil {
			return err
		}

		productName = newProduct.Name
		if newStock.Quantity < newStock.MinimumQuantity {
			alerts = append(alerts, stockAlert{newProduct.Name, newStock.Quantity, newStock.MinimumQuantity})
		}
		if !sameProduct && oldStock != nil && oldStock.Quantity < oldStock.MinimumQuantity {
			oldProduct, err := productRepo.GetByIDAndOwner(oldProductID, ownerID)
			if err != nil {
				return err
			}
			if oldProduct != nil {
				alerts = append(alerts, stockAlert{oldProduct.Name, oldStock.Quantity, oldStock.MinimumQuantity})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.dispatch(ownerEmail, alerts)
	resp := toSaleResponse(sale)
	resp.ProductName = productName
	return resp, nil
}

// Delete elimina una venta y devuelve su cantidad al stock del producto.
// Ambas mutaciones comparten la transacción.
func (uc *SaleUseCase) Delete(ctx context.Context, ownerID, saleID string) error {
	if saleID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		sale, err := saleRepo.GetByIDAndOwner(saleID, ownerID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		stock, err := stockRepo.GetForUpdate(sale.ProductID, ownerID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		stock.Quantity += sale.Quantity
		stock.UpdatedAt = time.Now()
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		return saleRepo.DeleteByIDAndOwner(saleID, ownerID)
	})
}

// GetByID obtiene una venta del dueño.
func (uc *SaleUseCase) GetByID(ownerID, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByIDAndOwner(saleID, ownerID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List lista las ventas del dueño con nombre de producto.
func (uc *SaleUseCase) List(ownerID string) (*dto.SaleListResponse, error) {
	details, err := uc.saleRepo.ListDetailByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{Items: make([]dto.SaleResponse, 0, len(details))}
	for _, d := range details {
		resp := toSaleResponse(&d.Sale)
		resp.ProductName = d.ProductName
		out.Items = append(out.Items, *resp)
	}
	return out, nil
}

// dispatch encola las alertas acumuladas; no hace nada sin destinatario
// (comportamiento del sistema original cuando el usuario no tiene email).
func (uc *SaleUseCase) dispatch(recipient string, alerts []stockAlert) {
	if recipient == "" || uc.notifier == nil {
		return
	}
	for _, a := range alerts {
		uc.notifier.NotifyLowStock(recipient, a.productName, a.quantity, a.minimum)
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		DateSold:   s.DateSold,
	}
}
