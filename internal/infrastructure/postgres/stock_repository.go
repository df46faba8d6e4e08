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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste una nueva fila de stock.
func (r *StockRepo) Create(s *entity.Stock) error {
	query := `
		INSERT INTO stock (id, user_id, product_id, quantity, minimum_quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.UserID, s.ProductID, s.Quantity, s.MinimumQuantity, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene una fila de stock por ID y dueño.
func (r *StockRepo) GetByIDAndOwner(id, ownerID string) (*entity.Stock, error) {
	return r.findOne(`
		SELECT id, user_id, product_id, quantity, minimum_quantity, updated_at
		FROM stock WHERE id = $1 AND user_id = $2`, id, ownerID)
}

// GetByProductAndOwner obtiene la fila de stock de un producto, o nil si no existe.
func (r *StockRepo) GetByProductAndOwner(productID, ownerID string) (*entity.Stock, error) {
	return r.findOne(`
		SELECT id, user_id, product_id, quantity, minimum_quantity, updated_at
		FROM stock WHERE product_id = $1 AND user_id = $2`, productID, ownerID)
}

// GetForUpdate obtiene la fila de stock de un producto y la bloquea (SELECT FOR UPDATE).
// Devuelve nil si no existe. Solo tiene sentido dentro de una transacción.
func (r *StockRepo) GetForUpdate(productID, ownerID string) (*entity.Stock, error) {
	return r.findOne(`
		SELECT id, user_id, product_id, quantity, minimum_quantity, updated_at
		FROM stock WHERE product_id = $1 AND user_id = $2
		FOR UPDATE`, productID, ownerID)
}

func (r *StockRepo) findOne(query string, args ...any) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.UserID, &s.ProductID, &s.Quantity, &s.MinimumQuantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la fila de stock por (product_id, user_id).
func (r *StockRepo) Upsert(s *entity.Stock) error {
	query := `
		INSERT INTO stock (id, user_id, product_id, quantity, minimum_quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (product_id, user_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, minimum_quantity = EXCLUDED.minimum_quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.UserID, s.ProductID, s.Quantity, s.MinimumQuantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByOwner lista el stock del dueño con paginación.
func (r *StockRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT id, user_id, product_id, quantity, minimum_quantity, updated_at
		FROM stock WHERE user_id = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProductID, &s.Quantity, &s.MinimumQuantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListDetailByOwner lista el stock del dueño con nombres de producto resueltos.
func (r *StockRepo) ListDetailByOwner(ownerID string) ([]*entity.StockDetail, error) {
	query := `
		SELECT s.id, s.user_id, s.product_id, s.quantity, s.minimum_quantity, s.updated_at, p.name
		FROM stock s JOIN products p ON p.id = s.product_id
		WHERE s.user_id = $1 ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list stock detail: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockDetail
	for rows.Next() {
		var d entity.StockDetail
		if err := rows.Scan(&d.ID, &d.UserID, &d.ProductID, &d.Quantity, &d.MinimumQuantity, &d.UpdatedAt, &d.ProductName); err != nil {
			return nil, fmt.Errorf("scan stock detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza una fila de stock existente (incluye posible cambio de producto).
func (r *StockRepo) Update(s *entity.Stock) error {
	query := `
		UPDATE stock SET product_id = $2, quantity = $3, minimum_quantity = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProductID, s.Quantity, s.MinimumQuantity, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner elimina una fila de stock por ID y dueño.
func (r *StockRepo) DeleteByIDAndOwner(id, ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}
