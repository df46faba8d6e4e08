package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.CounterpartyRepository = (*CounterpartyRepo)(nil)

// CounterpartyRepo implementación del puerto CounterpartyRepository sobre PostgreSQL (usable con pool o tx).
type CounterpartyRepo struct {
	q Querier
}

// NewCounterpartyRepository construye el adaptador de persistencia para contrapartes.
func NewCounterpartyRepository(q Querier) *CounterpartyRepo {
	return &CounterpartyRepo{q: q}
}

// Create persiste una nueva contraparte.
func (r *CounterpartyRepo) Create(cp *entity.Counterparty) error {
	query := `
		INSERT INTO counterparties (id, user_id, name, address, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		cp.ID, cp.UserID, cp.Name, cp.Address, cp.PhoneNumber, cp.CreatedAt, cp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert counterparty: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene una contraparte por ID y dueño.
func (r *CounterpartyRepo) GetByIDAndOwner(id, ownerID string) (*entity.Counterparty, error) {
	query := `
		SELECT id, user_id, name, address, phone_number, created_at, updated_at
		FROM counterparties WHERE id = $1 AND user_id = $2`
	var cp entity.Counterparty
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&cp.ID, &cp.UserID, &cp.Name, &cp.Address, &cp.PhoneNumber, &cp.CreatedAt, &cp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get counterparty: %w", err)
	}
	return &cp, nil
}

// ListByOwner lista contrapartes del dueño con paginación.
func (r *CounterpartyRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Counterparty, error) {
	query := `
		SELECT id, user_id, name, address, phone_number, created_at, updated_at
		FROM counterparties WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list counterparties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Counterparty
	for rows.Next() {
		var cp entity.Counterparty
		if err := rows.Scan(&cp.ID, &cp.UserID, &cp.Name, &cp.Address, &cp.PhoneNumber, &cp.CreatedAt, &cp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan counterparty: %w", err)
		}
		list = append(list, &cp)
	}
	return list, rows.Err()
}

// Update actualiza una contraparte existente.
func (r *CounterpartyRepo) Update(cp *entity.Counterparty) error {
	query := `
		UPDATE counterparties SET name = $2, address = $3, phone_number = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cp.ID, cp.Name, cp.Address, cp.PhoneNumber, cp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update counterparty: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner elimina una contraparte por ID y dueño.
func (r *CounterpartyRepo) DeleteByIDAndOwner(id, ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM counterparties WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete counterparty: %w", err)
	}
	return nil
}
