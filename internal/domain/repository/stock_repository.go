package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// StockRepository puerto de persistencia de stock (filtrado por dueño).
// Hay a lo sumo una fila por (product_id, user_id), respaldada por un
// constraint UNIQUE; Upsert escribe a través de él.
type StockRepository interface {
	Owned[entity.Stock]

	// GetByProductAndOwner obtiene la fila de stock de un producto, o nil si no existe.
	GetByProductAndOwner(productID, ownerID string) (*entity.Stock, error)
	// GetForUpdate obtiene la fila de stock de un producto bloqueándola
	// (SELECT FOR UPDATE). Devuelve nil si no existe. Solo tiene sentido
	// dentro de una transacción.
	GetForUpdate(productID, ownerID string) (*entity.Stock, error)
	// Upsert inserta o actualiza la cantidad por (product_id, user_id).
	Upsert(stock *entity.Stock) error
	// ListDetailByOwner lista el stock del dueño con nombres de producto resueltos.
	ListDetailByOwner(ownerID string) ([]*entity.StockDetail, error)
}
