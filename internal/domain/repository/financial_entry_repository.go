package repository

import "github.com/ast7/gestao-api/internal/domain/entity"

// FinancialEntryRepository porta de persistência do livro-caixa.
type FinancialEntryRepository interface {
	Create(entry *entity.FinancialEntry) error
	GetByID(id string) (*entity.FinancialEntry, error)
	List(limit, offset int) ([]*entity.FinancialEntry, error)
	ListAll() ([]*entity.FinancialEntry, error)
	ListByLicense(licenseID string) ([]*entity.FinancialEntry, error)
	Update(entry *entity.FinancialEntry) error
	Delete(id string) error
	// DeleteByLicense remove todos os lançamentos gerados por uma licença
	// (devolução ou exclusão). Não falha quando não há lançamentos.
	DeleteByLicense(licenseID string) error
}
