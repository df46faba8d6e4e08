package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Las tres referencias deben pertenecer al mismo dueño.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=150"`
	Price          decimal.Decimal `json:"price"`
	ManufacturerID string          `json:"manufacturer_id" validate:"required,uuid4"`
	CounterpartyID string          `json:"counterparty_id" validate:"required,uuid4"`
	AgreementID    string          `json:"agreement_id" validate:"required,uuid4"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=150"`
	Price          decimal.Decimal `json:"price"`
	ManufacturerID string          `json:"manufacturer_id" validate:"required,uuid4"`
	CounterpartyID string          `json:"counterparty_id" validate:"required,uuid4"`
	AgreementID    string          `json:"agreement_id" validate:"required,uuid4"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	ManufacturerID string          `json:"manufacturer_id"`
	CounterpartyID string          `json:"counterparty_id"`
	AgreementID    string          `json:"agreement_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
