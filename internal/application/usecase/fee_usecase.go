package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

// MonthlyFeeUseCase casos de uso de mensalidades de clientes. As
// mensalidades são registros informativos de cobrança: não geram
// lançamentos no livro-caixa.
type MonthlyFeeUseCase struct {
	feeRepo    repository.MonthlyFeeRepository
	clientRepo repository.ClientRepository
}

// NewMonthlyFeeUseCase constrói o caso de uso.
func NewMonthlyFeeUseCase(feeRepo repository.MonthlyFeeRepository, clientRepo repository.ClientRepository) *MonthlyFeeUseCase {
	return &MonthlyFeeUseCase{feeRepo: feeRepo, clientRepo: clientRepo}
}

// Create cadastra uma mensalidade para o cliente.
func (uc *MonthlyFeeUseCase) Create(clientID string, in dto.CreateMonthlyFeeRequest) (*dto.MonthlyFeeResponse, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	switch {
	case len(in.Description) < 3:
		return nil, fmt.Errorf("%w: descrição obrigatória", domain.ErrInvalidInput)
	case !in.Value.GreaterThan(decimal.Zero):
		return nil, fmt.Errorf("%w: valor inválido", domain.ErrInvalidInput)
	case in.DueDay < 1 || in.DueDay > 31:
		return nil, fmt.Errorf("%w: dia de vencimento deve estar entre 1 e 31", domain.ErrInvalidInput)
	}

	now := time.Now()
	fee := &entity.MonthlyFee{
		ID:          uuid.New().String(),
		ClientID:    client.ID,
		Description: in.Description,
		Value:       in.Value,
		DueDay:      in.DueDay,
		Active:      in.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.feeRepo.Create(fee); err != nil {
		return nil, err
	}
	resp := toFeeResponse(fee)
	return &resp, nil
}

// Update aplica uma atualização parcial tipada.
func (uc *MonthlyFeeUseCase) Update(id string, in dto.UpdateMonthlyFeeRequest) (*dto.MonthlyFeeResponse, error) {
	fee, err := uc.feeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, domain.ErrNotFound
	}

	if in.Description != nil {
		if len(*in.Description) < 3 {
			return nil, fmt.Errorf("%w: descrição obrigatória", domain.ErrInvalidInput)
		}
		fee.Description = *in.Description
	}
	if in.Value != nil {
		if !in.Value.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: valor inválido", domain.ErrInvalidInput)
		}
		fee.Value = *in.Value
	}
	if in.DueDay != nil {
		if *in.DueDay < 1 || *in.DueDay > 31 {
			return nil, fmt.Errorf("%w: dia de vencimento deve estar entre 1 e 31", domain.ErrInvalidInput)
		}
		fee.DueDay = *in.DueDay
	}
	if in.Active != nil {
		fee.Active = *in.Active
	}
	fee.UpdatedAt = time.Now()

	if err := uc.feeRepo.Update(fee); err != nil {
		return nil, err
	}
	resp := toFeeResponse(fee)
	return &resp, nil
}

// ListByClient lista as mensalidades do cliente.
func (uc *MonthlyFeeUseCase) ListByClient(clientID string) ([]dto.MonthlyFeeResponse, error) {
	fees, err := uc.feeRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlyFeeResponse, 0, len(fees))
	for _, f := range fees {
		out = append(out, toFeeResponse(f))
	}
	return out, nil
}

// Delete exclui a mensalidade.
func (uc *MonthlyFeeUseCase) Delete(id string) error {
	fee, err := uc.feeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if fee == nil {
		return domain.ErrNotFound
	}
	return uc.feeRepo.Delete(id)
}

func toFeeResponse(f *entity.MonthlyFee) dto.MonthlyFeeResponse {
	return dto.MonthlyFeeResponse{
		ID:          f.ID,
		ClientID:    f.ClientID,
		Description: f.Description,
		Value:       f.Value,
		DueDay:      f.DueDay,
		Active:      f.Active,
	}
}
