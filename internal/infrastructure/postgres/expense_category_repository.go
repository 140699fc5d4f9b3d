package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

var _ repository.ExpenseCategoryRepository = (*ExpenseCategoryRepo)(nil)

// ExpenseCategoryRepo implementação de ExpenseCategoryRepository.
type ExpenseCategoryRepo struct {
	q Querier
}

// NewExpenseCategoryRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewExpenseCategoryRepository(q Querier) *ExpenseCategoryRepo {
	return &ExpenseCategoryRepo{q: q}
}

// Create persiste uma nova categoria. Nome duplicado vira ErrDuplicate.
func (r *ExpenseCategoryRepo) Create(category *entity.ExpenseCategory) error {
	query := `INSERT INTO expense_categories (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, category.ID, category.Name, category.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense category: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria por ID.
func (r *ExpenseCategoryRepo) GetByID(id string) (*entity.ExpenseCategory, error) {
	query := `SELECT id, name, created_at FROM expense_categories WHERE id = $1`
	var c entity.ExpenseCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense category: %w", err)
	}
	return &c, nil
}

// List lista as categorias por nome.
func (r *ExpenseCategoryRepo) List() ([]*entity.ExpenseCategory, error) {
	query := `SELECT id, name, created_at FROM expense_categories ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list expense categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseCategory
	for rows.Next() {
		var c entity.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update renomeia uma categoria.
func (r *ExpenseCategoryRepo) Update(category *entity.ExpenseCategory) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE expense_categories SET name = $2 WHERE id = $1`, category.ID, category.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update expense category: %w", err)
	}
	return nil
}

// Delete remove uma categoria.
func (r *ExpenseCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expense_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense category: %w", err)
	}
	return nil
}
