package entity

import "time"

// Manufacturer representa un fabricante registrado por un usuario.
type Manufacturer struct {
	ID          string
	UserID      string
	Name        string
	Address     string
	PhoneNumber string
	Manager     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
