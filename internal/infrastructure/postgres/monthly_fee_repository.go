package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

var _ repository.MonthlyFeeRepository = (*MonthlyFeeRepo)(nil)

// MonthlyFeeRepo implementação de MonthlyFeeRepository.
type MonthlyFeeRepo struct {
	q Querier
}

// NewMonthlyFeeRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMonthlyFeeRepository(q Querier) *MonthlyFeeRepo {
	return &MonthlyFeeRepo{q: q}
}

// Create persiste uma nova mensalidade.
func (r *MonthlyFeeRepo) Create(fee *entity.MonthlyFee) error {
	query := `
		INSERT INTO client_monthly_fees (id, client_id, description, value, due_day, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		fee.ID, fee.ClientID, fee.Description, fee.Value, fee.DueDay, fee.Active, fee.CreatedAt, fee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert monthly fee: %w", err)
	}
	return nil
}

// GetByID obtém uma mensalidade por ID.
func (r *MonthlyFeeRepo) GetByID(id string) (*entity.MonthlyFee, error) {
	query := `
		SELECT id, client_id, description, value, due_day, active, created_at, updated_at
		FROM client_monthly_fees WHERE id = $1`
	var f entity.MonthlyFee
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.ClientID, &f.Description, &f.Value, &f.DueDay, &f.Active, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get monthly fee: %w", err)
	}
	return &f, nil
}

// ListByClient lista as mensalidades do cliente por dia de vencimento.
func (r *MonthlyFeeRepo) ListByClient(clientID string) ([]*entity.MonthlyFee, error) {
	query := `
		SELECT id, client_id, description, value, due_day, active, created_at, updated_at
		FROM client_monthly_fees WHERE client_id = $1 ORDER BY due_day, description`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list monthly fees: %w", err)
	}
	defer rows.Close()
	var list []*entity.MonthlyFee
	for rows.Next() {
		var f entity.MonthlyFee
		if err := rows.Scan(&f.ID, &f.ClientID, &f.Description, &f.Value, &f.DueDay, &f.Active,
			&f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan monthly fee: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update atualiza uma mensalidade.
func (r *MonthlyFeeRepo) Update(fee *entity.MonthlyFee) error {
	query := `
		UPDATE client_monthly_fees SET description = $2, value = $3, due_day = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		fee.ID, fee.Description, fee.Value, fee.DueDay, fee.Active, fee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update monthly fee: %w", err)
	}
	return nil
}

// Delete remove uma mensalidade.
func (r *MonthlyFeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM client_monthly_fees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete monthly fee: %w", err)
	}
	return nil
}
