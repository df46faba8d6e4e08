package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// ManufacturerRepository puerto de persistencia de fabricantes (filtrado por dueño).
type ManufacturerRepository interface {
	Owned[entity.Manufacturer]
}
