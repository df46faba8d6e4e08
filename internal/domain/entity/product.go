package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un usuario.
// Fabricante, contraparte y contrato referenciados deben pertenecer al mismo dueño.
type Product struct {
	ID             string
	UserID         string
	Name           string
	Price          decimal.Decimal // precio de venta, no negativo
	ManufacturerID string
	CounterpartyID string
	AgreementID    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
