package repository

// Owned define las operaciones comunes de un repositorio cuyas filas pertenecen
// a un dueño. Todo filtro de tenencia pasa por este contrato: una consulta por
// id siempre exige también el ownerID, de modo que una fila ajena se comporta
// igual que una inexistente.
type Owned[T any] interface {
	Create(e *T) error
	GetByIDAndOwner(id, ownerID string) (*T, error)
	ListByOwner(ownerID string, limit, offset int) ([]*T, error)
	Update(e *T) error
	DeleteByIDAndOwner(id, ownerID string) error
}
