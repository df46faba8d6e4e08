package dto

import "time"

// CreateManufacturerRequest entrada para crear un fabricante.
type CreateManufacturerRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Address     string `json:"address" validate:"required,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
	Manager     string `json:"manager" validate:"max=100"`
}

// UpdateManufacturerRequest entrada para actualizar un fabricante.
type UpdateManufacturerRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Address     string `json:"address" validate:"required,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
	Manager     string `json:"manager" validate:"max=100"`
}

// ManufacturerResponse salida de un fabricante.
type ManufacturerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	Manager     string    `json:"manager"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ManufacturerListResponse lista paginada de fabricantes.
type ManufacturerListResponse struct {
	Items []ManufacturerResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
