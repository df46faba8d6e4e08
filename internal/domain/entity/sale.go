package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada por el libro de ventas.
// TotalPrice se denormaliza al precio del producto en el momento de la mutación
// y se recalcula cuando cambian cantidad o producto.
type Sale struct {
	ID         string
	UserID     string
	ProductID  string
	Quantity   int64
	TotalPrice decimal.Decimal
	DateSold   time.Time
}

// SaleDetail es una venta con el nombre del producto resuelto (para listados y reportes).
type SaleDetail struct {
	Sale
	ProductName string
}
