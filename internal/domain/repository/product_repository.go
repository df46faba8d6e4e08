package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// ProductRepository puerto de persistencia de productos (filtrado por dueño).
type ProductRepository interface {
	Owned[entity.Product]
}
