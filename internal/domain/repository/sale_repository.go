package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// SaleRepository puerto de persistencia de ventas (filtrado por dueño).
type SaleRepository interface {
	Owned[entity.Sale]

	// ListDetailByOwner lista las ventas del dueño con nombres de producto resueltos.
	ListDetailByOwner(ownerID string) ([]*entity.SaleDetail, error)
}
