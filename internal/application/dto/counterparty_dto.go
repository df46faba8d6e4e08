package dto

import "time"

// CreateCounterpartyRequest entrada para crear una contraparte.
type CreateCounterpartyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Address     string `json:"address" validate:"required,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
}

// UpdateCounterpartyRequest entrada para actualizar una contraparte.
type UpdateCounterpartyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Address     string `json:"address" validate:"required,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
}

// CounterpartyResponse salida de una contraparte.
type CounterpartyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CounterpartyListResponse lista paginada de contrapartes.
type CounterpartyListResponse struct {
	Items []CounterpartyResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
