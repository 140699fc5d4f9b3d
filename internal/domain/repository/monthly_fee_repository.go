package repository

import "github.com/ast7/gestao-api/internal/domain/entity"

// MonthlyFeeRepository porta de persistência de mensalidades.
type MonthlyFeeRepository interface {
	Create(fee *entity.MonthlyFee) error
	GetByID(id string) (*entity.MonthlyFee, error)
	ListByClient(clientID string) ([]*entity.MonthlyFee, error)
	Update(fee *entity.MonthlyFee) error
	Delete(id string) error
}
