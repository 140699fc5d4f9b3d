// Package ledger implementa o CRUD do livro-caixa com as regras de
// validação dos lançamentos manuais. Lançamentos gerados por venda de
// licença são criados e removidos pelo pacote licensing.
package ledger

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

// UseCase casos de uso do livro-caixa.
type UseCase struct {
	entryRepo    repository.FinancialEntryRepository
	clientRepo   repository.ClientRepository
	supplierRepo repository.SupplierRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	entryRepo repository.FinancialEntryRepository,
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
) *UseCase {
	return &UseCase{entryRepo: entryRepo, clientRepo: clientRepo, supplierRepo: supplierRepo}
}

// Create registra um lançamento manual de receita ou despesa.
func (uc *UseCase) Create(in dto.CreateFinancialEntryRequest) (*dto.FinancialEntryResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &entity.FinancialEntry{
		ID:            uuid.New().String(),
		Type:          in.Type,
		Description:   in.Description,
		Category:      in.Category,
		Value:         in.Value,
		Date:          in.Date,
		DueDate:       in.DueDate,
		PaymentMethod: in.PaymentMethod,
		Observation:   in.Observation,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if in.ClientID != "" {
		client, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
		entry.ClientID = client.ID
		entry.ClientName = client.Name
	}
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		entry.SupplierID = supplier.ID
		entry.SupplierName = supplier.Name
	}

	if err := uc.entryRepo.Create(entry); err != nil {
		return nil, err
	}
	return toResponse(entry), nil
}

// Update aplica uma atualização parcial tipada. Tipo e vínculo com
// licença não são editáveis.
func (uc *UseCase) Update(id string, in dto.UpdateFinancialEntryRequest) (*dto.FinancialEntryResponse, error) {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}

	if in.Description != nil {
		if len(*in.Description) < 3 {
			return nil, fmt.Errorf("%w: descrição obrigatória", domain.ErrInvalidInput)
		}
		entry.Description = *in.Description
	}
	if in.Category != nil {
		if *in.Category == "" {
			return nil, fmt.Errorf("%w: categoria obrigatória", domain.ErrInvalidInput)
		}
		entry.Category = *in.Category
	}
	if in.Value != nil {
		if !in.Value.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: valor inválido", domain.ErrInvalidInput)
		}
		entry.Value = *in.Value
	}
	if in.Date != nil {
		if in.Date.After(time.Now()) {
			return nil, fmt.Errorf("%w: data não pode ser futura", domain.ErrInvalidInput)
		}
		entry.Date = *in.Date
	}
	if in.DueDate != nil {
		entry.DueDate = in.DueDate
	}
	if in.PaymentMethod != nil {
		if !entity.ValidPaymentMethod(*in.PaymentMethod) {
			return nil, fmt.Errorf("%w: forma de pagamento desconhecida", domain.ErrInvalidInput)
		}
		entry.PaymentMethod = *in.PaymentMethod
	}
	if in.Observation != nil {
		entry.Observation = *in.Observation
	}
	if in.SupplierID != nil {
		if *in.SupplierID == "" {
			entry.SupplierID = ""
			entry.SupplierName = ""
		} else {
			supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
			if err != nil {
				return nil, err
			}
			if supplier == nil {
				return nil, domain.ErrNotFound
			}
			entry.SupplierID = supplier.ID
			entry.SupplierName = supplier.Name
		}
	}
	entry.UpdatedAt = time.Now()

	if err := uc.entryRepo.Update(entry); err != nil {
		return nil, err
	}
	return toResponse(entry), nil
}

// Delete exclui um lançamento.
func (uc *UseCase) Delete(id string) error {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.entryRepo.Delete(id)
}

// GetByID devolve um lançamento.
func (uc *UseCase) GetByID(id string) (*dto.FinancialEntryResponse, error) {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(entry), nil
}

// List lista lançamentos com paginação.
func (uc *UseCase) List(limit, offset int) ([]dto.FinancialEntryResponse, error) {
	entries, err := uc.entryRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FinancialEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toResponse(e))
	}
	return out, nil
}

func validate(in dto.CreateFinancialEntryRequest) error {
	switch {
	case in.Type != entity.EntryTypeRevenue && in.Type != entity.EntryTypeExpense:
		return fmt.Errorf("%w: tipo deve ser receita ou despesa", domain.ErrInvalidInput)
	case len(in.Description) < 3:
		return fmt.Errorf("%w: descrição obrigatória", domain.ErrInvalidInput)
	case in.Category == "":
		return fmt.Errorf("%w: categoria obrigatória", domain.ErrInvalidInput)
	case !in.Value.GreaterThan(decimal.Zero):
		return fmt.Errorf("%w: valor inválido", domain.ErrInvalidInput)
	case in.Date.IsZero():
		return fmt.Errorf("%w: data obrigatória", domain.ErrInvalidInput)
	case in.Date.After(time.Now()):
		return fmt.Errorf("%w: data não pode ser futura", domain.ErrInvalidInput)
	case in.DueDate == nil:
		return fmt.Errorf("%w: data de vencimento obrigatória", domain.ErrInvalidInput)
	case !entity.ValidPaymentMethod(in.PaymentMethod):
		return fmt.Errorf("%w: forma de pagamento desconhecida", domain.ErrInvalidInput)
	}
	return nil
}

func toResponse(e *entity.FinancialEntry) *dto.FinancialEntryResponse {
	return &dto.FinancialEntryResponse{
		ID:            e.ID,
		Type:          e.Type,
		Description:   e.Description,
		Category:      e.Category,
		Value:         e.Value,
		Date:          e.Date,
		DueDate:       e.DueDate,
		ClientID:      e.ClientID,
		ClientName:    e.ClientName,
		SupplierID:    e.SupplierID,
		SupplierName:  e.SupplierName,
		LicenseID:     e.LicenseID,
		PaymentMethod: e.PaymentMethod,
		Observation:   e.Observation,
	}
}
