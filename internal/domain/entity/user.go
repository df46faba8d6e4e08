package entity

import "time"

// User representa un usuario del sistema. Cada usuario es dueño de sus propios
// fabricantes, contrapartes, contratos, productos, stock y ventas.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
