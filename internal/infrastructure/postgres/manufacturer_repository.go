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

var _ repository.ManufacturerRepository = (*ManufacturerRepo)(nil)

// ManufacturerRepo implementación del puerto ManufacturerRepository sobre PostgreSQL (usable con pool o tx).
type ManufacturerRepo struct {
	q Querier
}

// NewManufacturerRepository construye el adaptador de persistencia para fabricantes.
func NewManufacturerRepository(q Querier) *ManufacturerRepo {
	return &ManufacturerRepo{q: q}
}

// Create persiste un nuevo fabricante.
func (r *ManufacturerRepo) Create(m *entity.Manufacturer) error {
	query := `
		INSERT INTO manufacturers (id, user_id, name, address, phone_number, manager, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.UserID, m.Name, m.Address, m.PhoneNumber, m.Manager, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert manufacturer: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene un fabricante por ID y dueño.
func (r *ManufacturerRepo) GetByIDAndOwner(id, ownerID string) (*entity.Manufacturer, error) {
	query := `
		SELECT id, user_id, name, address, phone_number, manager, created_at, updated_at
		FROM manufacturers WHERE id = $1 AND user_id = $2`
	var m entity.Manufacturer
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&m.ID, &m.UserID, &m.Name, &m.Address, &m.PhoneNumber, &m.Manager, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturer: %w", err)
	}
	return &m, nil
}

// ListByOwner lista fabricantes del dueño con paginación.
func (r *ManufacturerRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Manufacturer, error) {
	query := `
		SELECT id, user_id, name, address, phone_number, manager, created_at, updated_at
		FROM manufacturers WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list manufacturers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Manufacturer
	for rows.Next() {
		var m entity.Manufacturer
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Address, &m.PhoneNumber, &m.Manager, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan manufacturer: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un fabricante existente.
func (r *ManufacturerRepo) Update(m *entity.Manufacturer) error {
	query := `
		UPDATE manufacturers SET name = $2, address = $3, phone_number = $4, manager = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Address, m.PhoneNumber, m.Manager, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update manufacturer: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner elimina un fabricante por ID y dueño.
func (r *ManufacturerRepo) DeleteByIDAndOwner(id, ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM manufacturers WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete manufacturer: %w", err)
	}
	return nil
}
