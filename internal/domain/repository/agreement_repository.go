package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// AgreementRepository puerto de persistencia de contratos (filtrado por dueño).
type AgreementRepository interface {
	Owned[entity.Agreement]
}
