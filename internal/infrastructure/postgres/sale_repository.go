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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, user_id, product_id, quantity, total_price, date_sold)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.UserID, s.ProductID, s.Quantity, s.TotalPrice, s.DateSold,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene una venta por ID y dueño.
func (r *SaleRepo) GetByIDAndOwner(id, ownerID string) (*entity.Sale, error) {
	query := `
		SELECT id, user_id, product_id, quantity, total_price, date_sold
		FROM sales WHERE id = $1 AND user_id = $2`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&s.ID, &s.UserID, &s.ProductID, &s.Quantity, &s.TotalPrice, &s.DateSold,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListByOwner lista ventas del dueño con paginación.
func (r *SaleRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, user_id, product_id, quantity, total_price, date_sold
		FROM sales WHERE user_id = $1 ORDER BY date_sold DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProductID, &s.Quantity, &s.TotalPrice, &s.DateSold); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListDetailByOwner lista las ventas del dueño con nombres de producto resueltos.
func (r *SaleRepo) ListDetailByOwner(ownerID string) ([]*entity.SaleDetail, error) {
	query := `
		SELECT s.id, s.user_id, s.product_id, s.quantity, s.total_price, s.date_sold, p.name
		FROM sales s JOIN products p ON p.id = s.product_id
		WHERE s.user_id = $1 ORDER BY s.date_sold DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sale detail: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.UserID, &d.ProductID, &d.Quantity, &d.TotalPrice, &d.DateSold, &d.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza una venta existente (producto, cantidad y total).
func (r *SaleRepo) Update(s *entity.Sale) error {
	query := `
		UPDATE sales SET product_id = $2, quantity = $3, total_price = $4, date_sold = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProductID, s.Quantity, s.TotalPrice, s.DateSold,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner elimina una venta por ID y dueño.
func (r *SaleRepo) DeleteByIDAndOwner(id, ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM sales WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}
