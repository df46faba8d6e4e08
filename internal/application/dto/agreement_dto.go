package dto

import "time"

// CreateAgreementRequest entrada para crear un contrato.
// DateSigned llega como YYYY-MM-DD (formato del formulario original).
type CreateAgreementRequest struct {
	ContractNumber string `json:"contract_number" validate:"required,min=1,max=50"`
	DateSigned     string `json:"date_signed" validate:"required"`
	CounterpartyID string `json:"counterparty_id" validate:"required,uuid4"`
}

// UpdateAgreementRequest entrada para actualizar un contrato.
type UpdateAgreementRequest struct {
	ContractNumber string `json:"contract_number" validate:"required,min=1,max=50"`
	DateSigned     string `json:"date_signed" validate:"required"`
	CounterpartyID string `json:"counterparty_id" validate:"required,uuid4"`
}

// AgreementResponse salida de un contrato.
type AgreementResponse struct {
	ID             string    `json:"id"`
	ContractNumber string    `json:"contract_number"`
	DateSigned     time.Time `json:"date_signed"`
	CounterpartyID string    `json:"counterparty_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AgreementListResponse lista paginada de contratos.
type AgreementListResponse struct {
	Items []AgreementResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
