package dto

import "time"

// CreateStockRequest entrada para registrar existencias de un producto.
// Si ya hay fila de stock para el producto, la cantidad se suma (upsert-add).
type CreateStockRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int64  `json:"quantity" validate:"min=0"`
}

// UpdateStockRequest entrada para fijar cantidad/umbral de una fila de stock.
type UpdateStockRequest struct {
	ProductID       string `json:"product_id" validate:"required,uuid4"`
	Quantity        int64  `json:"quantity" validate:"min=0"`
	MinimumQuantity *int64 `json:"minimum_quantity" validate:"omitempty,min=0"`
}

// StockResponse salida de una fila de stock.
type StockResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name,omitempty"`
	Quantity        int64     `json:"quantity"`
	MinimumQuantity int64     `json:"minimum_quantity"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// StockListResponse lista de stock del dueño.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
}
