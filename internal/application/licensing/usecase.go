// Package licensing implementa a venda, devolução e exclusão de
// licenças mantendo o livro-caixa consistente com o estado da licença:
// enquanto a licença não é devolvida existe exatamente um lançamento de
// receita apontando para ela; depois, nenhum.
package licensing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

// Categoria fixa dos lançamentos gerados por venda de licença.
const saleCategory = "Venda Software"

// LicenseUseCase casos de uso de licenciamento com reconciliação do
// livro-caixa.
type LicenseUseCase struct {
	txRunner     TxRunner
	clientRepo   repository.ClientRepository
	softwareRepo repository.SoftwareRepository
	licenseRepo  repository.LicenseRepository
	entryRepo    repository.FinancialEntryRepository
}

// NewLicenseUseCase constrói o caso de uso.
func NewLicenseUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	softwareRepo repository.SoftwareRepository,
	licenseRepo repository.LicenseRepository,
	entryRepo repository.FinancialEntryRepository,
) *LicenseUseCase {
	return &LicenseUseCase{
		txRunner:     txRunner,
		clientRepo:   clientRepo,
		softwareRepo: softwareRepo,
		licenseRepo:  licenseRepo,
		entryRepo:    entryRepo,
	}
}

// Sell vende uma licença ao cliente: grava a licença e o lançamento de
// receita correspondente em uma única transação. Price zero usa o preço
// de tabela do software para a modalidade.
func (uc *LicenseUseCase) Sell(ctx context.Context, clientID string, in dto.SellLicenseRequest) (*dto.LicenseResponse, error) {
	if clientID == "" || in.SoftwareID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidLicenseType(in.Type) {
		return nil, fmt.Errorf("%w: modalidade de licença desconhecida", domain.ErrInvalidInput)
	}

	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	software, err := uc.softwareRepo.GetByID(in.SoftwareID)
	if err != nil {
		return nil, err
	}
	if software == nil {
		return nil, domain.ErrNotFound
	}

	price := in.Price
	if price.IsZero() {
		price = software.PriceFor(in.Type)
	}
	if !price.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: preço deve ser maior que zero", domain.ErrInvalidInput)
	}

	now := time.Now()
	acquisition := in.AcquisitionDate
	if acquisition.IsZero() {
		acquisition = now
	}

	license := &entity.SoftwareLicense{
		ID:              uuid.New().String(),
		ClientID:        client.ID,
		SoftwareID:      software.ID,
		SoftwareName:    software.Name,
		Type:            in.Type,
		AcquisitionDate: acquisition,
		Price:           price,
		Returned:        false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	entry := &entity.FinancialEntry{
		ID:          uuid.New().String(),
		Type:        entity.EntryTypeRevenue,
		Description: fmt.Sprintf("Aquisição de Licença: %s (%s)", software.Name, in.Type),
		Category:    saleCategory,
		Value:       price,
		Date:        now,
		ClientID:    client.ID,
		ClientName:  client.Name,
		LicenseID:   license.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Os dois writes na mesma transação: se o lançamento falhar, a
	// licença não fica órfã no banco.
	err = uc.txRunner.Run(ctx, func(licenseRepo repository.LicenseRepository, entryRepo repository.FinancialEntryRepository) error {
		if err := licenseRepo.Create(license); err != nil {
			return err
		}
		return entryRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return toLicenseResponse(license), nil
}

// Return marca a licença como devolvida e remove os lançamentos gerados
// por ela, em uma única transação. Devolver uma licença já devolvida é
// no-op nos lançamentos (não restam linhas a remover).
func (uc *LicenseUseCase) Return(ctx context.Context, licenseID string) (*dto.LicenseResponse, error) {
	license, err := uc.licenseRepo.GetByID(licenseID)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrNotFound
	}

	license.Returned = true
	license.UpdatedAt = time.Now()
	err = uc.txRunner.Run(ctx, func(licenseRepo repository.LicenseRepository, entryRepo repository.FinancialEntryRepository) error {
		if err := licenseRepo.Update(license); err != nil {
			return err
		}
		return entryRepo.DeleteByLicense(license.ID)
	})
	if err != nil {
		return nil, err
	}
	return toLicenseResponse(license), nil
}

// Delete exclui a licença e os lançamentos dependentes, em uma única
// transação.
func (uc *LicenseUseCase) Delete(ctx context.Context, licenseID string) error {
	license, err := uc.licenseRepo.GetByID(licenseID)
	if err != nil {
		return err
	}
	if license == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(licenseRepo repository.LicenseRepository, entryRepo repository.FinancialEntryRepository) error {
		if err := entryRepo.DeleteByLicense(license.ID); err != nil {
			return err
		}
		return licenseRepo.Delete(license.ID)
	})
}

// Update aplica uma atualização parcial à licença. Não toca no
// livro-caixa: alterar o preço depois da venda não reajusta o
// lançamento de receita já registrado.
func (uc *LicenseUseCase) Update(licenseID string, in dto.UpdateLicenseRequest) (*dto.LicenseResponse, error) {
	license, err := uc.licenseRepo.GetByID(licenseID)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrNotFound
	}

	if in.Type != nil {
		if !entity.ValidLicenseType(*in.Type) {
			return nil, fmt.Errorf("%w: modalidade de licença desconhecida", domain.ErrInvalidInput)
		}
		license.Type = *in.Type
	}
	if in.SoftwareID != nil {
		license.SoftwareID = *in.SoftwareID
	}
	if in.SoftwareName != nil {
		license.SoftwareName = *in.SoftwareName
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: preço deve ser maior que zero", domain.ErrInvalidInput)
		}
		license.Price = *in.Price
	}
	license.UpdatedAt = time.Now()

	if err := uc.licenseRepo.Update(license); err != nil {
		return nil, err
	}
	return toLicenseResponse(license), nil
}

// ListByClient lista as licenças do cliente.
func (uc *LicenseUseCase) ListByClient(clientID string) ([]dto.LicenseResponse, error) {
	licenses, err := uc.licenseRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LicenseResponse, 0, len(licenses))
	for _, l := range licenses {
		out = append(out, *toLicenseResponse(l))
	}
	return out, nil
}

func toLicenseResponse(l *entity.SoftwareLicense) *dto.LicenseResponse {
	return &dto.LicenseResponse{
		ID:              l.ID,
		ClientID:        l.ClientID,
		SoftwareID:      l.SoftwareID,
		SoftwareName:    l.SoftwareName,
		Type:            l.Type,
		AcquisitionDate: l.AcquisitionDate,
		Price:           l.Price,
		Returned:        l.Returned,
	}
}
