package sales

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el libro de ventas:
// o se persisten venta y stock juntos, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// LowStockNotifier encola una alerta de stock bajo para el dueño.
// El envío es asíncrono y de un solo intento; un fallo jamás debe
// propagar a la operación de venta que lo originó.
type LowStockNotifier interface {
	NotifyLowStock(recipient, productName string, quantity, minimum int64)
}
