package usecase

import (
	"fmt"
	"time"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

// CompanyUseCase leitura e edição dos dados da empresa (registro único,
// criado pela migração inicial).
type CompanyUseCase struct {
	companyRepo repository.CompanyInfoRepository
}

// NewCompanyUseCase constrói o caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyInfoRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// Get devolve os dados da empresa.
func (uc *CompanyUseCase) Get() (*dto.CompanyInfoResponse, error) {
	info, err := uc.companyRepo.Get()
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CompanyInfoResponse{
		ID:      info.ID,
		Name:    info.Name,
		CNPJ:    info.CNPJ,
		Address: info.Address,
		Phone:   info.Phone,
		Email:   info.Email,
		LogoURL: info.LogoURL,
	}, nil
}

// Update substitui os dados da empresa.
func (uc *CompanyUseCase) Update(in dto.CompanyInfoRequest) (*dto.CompanyInfoResponse, error) {
	info, err := uc.companyRepo.Get()
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, domain.ErrNotFound
	}
	if len(in.Name) < 2 {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}

	info.Name = in.Name
	info.CNPJ = in.CNPJ
	info.Address = in.Address
	info.Phone = in.Phone
	info.Email = in.Email
	info.LogoURL = in.LogoURL
	info.UpdatedAt = time.Now()

	if err := uc.companyRepo.Update(info); err != nil {
		return nil, err
	}
	return &dto.CompanyInfoResponse{
		ID:      info.ID,
		Name:    info.Name,
		CNPJ:    info.CNPJ,
		Address: info.Address,
		Phone:   info.Phone,
		Email:   info.Email,
		LogoURL: info.LogoURL,
	}, nil
}
