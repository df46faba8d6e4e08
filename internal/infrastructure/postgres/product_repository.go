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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (id, user_id, name, price, manufacturer_id, counterparty_id, agreement_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.UserID, p.Name, p.Price, p.ManufacturerID, p.CounterpartyID, p.AgreementID,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene un producto por ID y dueño.
func (r *ProductRepo) GetByIDAndOwner(id, ownerID string) (*entity.Product, error) {
	query := `
		SELECT id, user_id, name, price, manufacturer_id, counterparty_id, agreement_id, created_at, updated_at
		FROM products WHERE id = $1 AND user_id = $2`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Price, &p.ManufacturerID, &p.CounterpartyID, &p.AgreementID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByOwner lista productos del dueño con paginación.
func (r *ProductRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, user_id, name, price, manufacturer_id, counterparty_id, agreement_id, created_at, updated_at
		FROM products WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Price, &p.ManufacturerID, &p.CounterpartyID,
			&p.AgreementID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, manufacturer_id = $4, counterparty_id = $5, agreement_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Price, p.ManufacturerID, p.CounterpartyID, p.AgreementID, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner elimina un producto por ID y dueño.
func (r *ProductRepo) DeleteByIDAndOwner(id, ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
