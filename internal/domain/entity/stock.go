package entity

import "time"

// Stock representa la existencia actual de un producto para un dueño.
// Hay a lo sumo una fila por (product_id, user_id); la cantidad es el total
// corriente, mutado por el libro de ventas y por los endpoints de stock.
type Stock struct {
	ID              string
	UserID          string
	ProductID       string
	Quantity        int64
	MinimumQuantity int64 // umbral de alerta de stock bajo
	UpdatedAt       time.Time
}

// StockDetail es una fila de stock con el nombre del producto resuelto (para listados y reportes).
type StockDetail struct {
	Stock
	ProductName string
}
