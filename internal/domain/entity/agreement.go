package entity

import "time"

// Agreement representa un contrato firmado con una contraparte del mismo dueño.
type Agreement struct {
	ID             string
	UserID         string
	ContractNumber string
	DateSigned     time.Time
	CounterpartyID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
