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

var _ repository.AgreementRepository = (*AgreementRepo)(nil)

// AgreementRepo implementación del puerto AgreementRepository sobre PostgreSQL (usable con pool o tx).
type AgreementRepo struct {
	q Querier
}

// NewAgreementRepository construye el adaptador de persistencia para contratos.
func NewAgreementRepository(q Querier) *AgreementRepo {
	return &AgreementRepo{q: q}
}

// Create persiste un nuevo contrato.
func (r *AgreementRepo) Create(a *entity.Agreement) error {
	query := `
		INSERT INTO agreements (id, user_id, contract_number, date_signed, counterparty_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UserID, a.ContractNumber, a.DateSigned, a.CounterpartyID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert agreement: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene un contrato por ID y dueño.
func (r *AgreementRepo) GetByIDAndOwner(id, ownerID string) (*entity.Agreement, error) {
	query := `
		SELECT id, user_id, contract_number, date_signed, counterparty_id, created_at, updated_at
		FROM agreements WHERE id = $1 AND user_id = $2`
	var a entity.Agreement
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&a.ID, &a.UserID, &a.ContractNumber, &a.DateSigned, &a.CounterpartyID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agreement: %w", err)
	}
	return &a, nil
}

// ListByOwner lista contratos del dueño con paginación.
func (r *AgreementRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Agreement, error) {
	query := `
		SELECT id, user_id, contract_number, date_signed, counterparty_id, created_at, updated_at
		FROM agreements WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list agreements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Agreement
	for rows.Next() {
		var a entity.Agreement
		if err := rows.Scan(&a.ID, &a.UserID, &a.ContractNumber, &a.DateSigned, &a.CounterpartyID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan agreement: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza un contrato existente.
func (r *AgreementRepo) Update(a *entity.Agreement) error {
	query := `
		UPDATE agreements SET contract_number = $2, date_signed = $3, counterparty_id = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ContractNumber, a.DateSigned, a.CounterpartyID, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update agreement: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner elimina un contrato por ID y dueño.
func (r *AgreementRepo) DeleteByIDAndOwner(id, ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM agreements WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete agreement: %w", err)
	}
	return nil
}
