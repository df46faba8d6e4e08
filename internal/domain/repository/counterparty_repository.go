package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// CounterpartyRepository puerto de persistencia de contrapartes (filtrado por dueño).
type CounterpartyRepository interface {
	Owned[entity.Counterparty]
}
