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

// SoftwareUseCase casos de uso do catálogo de softwares.
type SoftwareUseCase struct {
	softwareRepo repository.SoftwareRepository
}

// NewSoftwareUseCase constrói o caso de uso.
func NewSoftwareUseCase(softwareRepo repository.SoftwareRepository) *SoftwareUseCase {
	return &SoftwareUseCase{softwareRepo: softwareRepo}
}

// Create cadastra um software no catálogo. Preços podem ser zero: nem
// toda modalidade é comercializada para todo produto.
func (uc *SoftwareUseCase) Create(in dto.CreateSoftwareRequest) (*dto.SoftwareResponse, error) {
	if len(in.Name) < 2 {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	if in.PriceUnitary.IsNegative() || in.PriceNetwork.IsNegative() || in.PriceCloud.IsNegative() ||
		in.UpdatePrice.IsNegative() || in.CloudUpdatePrice.IsNegative() || in.MonthlyFee.IsNegative() {
		return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
	}

	now := time.Now()
	software := &entity.Software{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Version:          in.Version,
		PriceUnitary:     in.PriceUnitary,
		PriceNetwork:     in.PriceNetwork,
		PriceCloud:       in.PriceCloud,
		UpdatePrice:      in.UpdatePrice,
		CloudUpdatePrice: in.CloudUpdatePrice,
		MonthlyFee:       in.MonthlyFee,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.softwareRepo.Create(software); err != nil {
		return nil, err
	}
	return toSoftwareResponse(software), nil
}

// Update aplica uma atualização parcial tipada.
func (uc *SoftwareUseCase) Update(id string, in dto.UpdateSoftwareRequest) (*dto.SoftwareResponse, error) {
	software, err := uc.softwareRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if software == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if len(*in.Name) < 2 {
			return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
		}
		software.Name = *in.Name
	}
	if in.Version != nil {
		software.Version = *in.Version
	}
	if in.PriceUnitary != nil {
		if in.PriceUnitary.IsNegative() {
			return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
		}
		software.PriceUnitary = *in.PriceUnitary
	}
	if in.PriceNetwork != nil {
		if in.PriceNetwork.IsNegative() {
			return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
		}
		software.PriceNetwork = *in.PriceNetwork
	}
	if in.PriceCloud != nil {
		if in.PriceCloud.IsNegative() {
			return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
		}
		software.PriceCloud = *in.PriceCloud
	}
	if in.UpdatePrice != nil {
		if in.UpdatePrice.IsNegative() {
			return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
		}
		software.UpdatePrice = *in.UpdatePrice
	}
	if in.CloudUpdatePrice != nil {
		if in.CloudUpdatePrice.IsNegative() {
			return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
		}
		software.CloudUpdatePrice = *in.CloudUpdatePrice
	}
	if in.MonthlyFee != nil {
		if in.MonthlyFee.IsNegative() {
			return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
		}
		software.MonthlyFee = *in.MonthlyFee
	}
	software.UpdatedAt = time.Now()

	if err := uc.softwareRepo.Update(software); err != nil {
		return nil, err
	}
	return toSoftwareResponse(software), nil
}

// GetByID devolve um software do catálogo.
func (uc *SoftwareUseCase) GetByID(id string) (*dto.SoftwareResponse, error) {
	software, err := uc.softwareRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if software == nil {
		return nil, domain.ErrNotFound
	}
	return toSoftwareResponse(software), nil
}

// List lista o catálogo de softwares.
func (uc *SoftwareUseCase) List() ([]dto.SoftwareResponse, error) {
	softwares, err := uc.softwareRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SoftwareResponse, 0, len(softwares))
	for _, s := range softwares {
		out = append(out, *toSoftwareResponse(s))
	}
	return out, nil
}

// Delete exclui um software do catálogo. Licenças já vendidas guardam o
// nome do software na própria linha e não são afetadas.
func (uc *SoftwareUseCase) Delete(id string) error {
	software, err := uc.softwareRepo.GetByID(id)
	if err != nil {
		return err
	}
	if software == nil {
		return domain.ErrNotFound
	}
	return uc.softwareRepo.Delete(id)
}

func toSoftwareResponse(s *entity.Software) *dto.SoftwareResponse {
	return &dto.SoftwareResponse{
		ID:               s.ID,
		Name:             s.Name,
		Version:          s.Version,
		PriceUnitary:     s.PriceUnitary,
		PriceNetwork:     s.PriceNetwork,
		PriceCloud:       s.PriceCloud,
		UpdatePrice:      s.UpdatePrice,
		CloudUpdatePrice: s.CloudUpdatePrice,
		MonthlyFee:       s.MonthlyFee,
	}
}
