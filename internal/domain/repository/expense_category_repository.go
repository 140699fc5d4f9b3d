package repository

import "github.com/ast7/gestao-api/internal/domain/entity"

// ExpenseCategoryRepository porta de persistência de categorias de despesa.
type ExpenseCategoryRepository interface {
	Create(category *entity.ExpenseCategory) error
	GetByID(id string) (*entity.ExpenseCategory, error)
	List() ([]*entity.ExpenseCategory, error)
	Update(category *entity.ExpenseCategory) error
	Delete(id string) error
}
