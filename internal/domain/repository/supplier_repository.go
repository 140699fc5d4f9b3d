package repository

import "github.com/ast7/gestao-api/internal/domain/entity"

// SupplierRepository porta de persistência de fornecedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}
