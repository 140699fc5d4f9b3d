package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

// ExpenseCategoryUseCase casos de uso das categorias de despesa.
type ExpenseCategoryUseCase struct {
	categoryRepo repository.ExpenseCategoryRepository
}

// NewExpenseCategoryUseCase constrói o caso de uso.
func NewExpenseCategoryUseCase(categoryRepo repository.ExpenseCategoryRepository) *ExpenseCategoryUseCase {
	return &ExpenseCategoryUseCase{categoryRepo: categoryRepo}
}

// Create cadastra uma categoria. O nome é único (violação vira
// ErrDuplicate no repositório).
func (uc *ExpenseCategoryUseCase) Create(in dto.ExpenseCategoryRequest) (*dto.ExpenseCategoryResponse, error) {
	if len(in.Name) < 2 {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	category := &entity.ExpenseCategory{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.ExpenseCategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// Update renomeia a categoria.
func (uc *ExpenseCategoryUseCase) Update(id string, in dto.ExpenseCategoryRequest) (*dto.ExpenseCategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if len(in.Name) < 2 {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	category.Name = in.Name
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return &dto.ExpenseCategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// List lista as categorias.
func (uc *ExpenseCategoryUseCase) List() ([]dto.ExpenseCategoryResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.ExpenseCategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// Delete exclui a categoria. Lançamentos antigos guardam o nome da
// categoria na própria linha e não são afetados.
func (uc *ExpenseCategoryUseCase) Delete(id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(id)
}
