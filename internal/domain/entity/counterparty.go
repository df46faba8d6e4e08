package entity

import "time"

// Counterparty representa una contraparte comercial (cliente o proveedor) de un usuario.
type Counterparty struct {
	ID          string
	UserID      string
	Name        string
	Address     string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
