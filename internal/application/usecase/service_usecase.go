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

// ServiceUseCase casos de uso do catálogo de serviços.
type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
}

// NewServiceUseCase constrói o caso de uso.
func NewServiceUseCase(serviceRepo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{serviceRepo: serviceRepo}
}

// Create cadastra um serviço.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if len(in.Name) < 2 {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	if in.PriceClient.IsNegative() || in.PriceNonClient.IsNegative() {
		return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
	}

	now := time.Now()
	service := &entity.Service{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		PriceClient:    in.PriceClient,
		PriceNonClient: in.PriceNonClient,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.serviceRepo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Update aplica uma atualização parcial tipada.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if len(*in.Name) < 2 {
			return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
		}
		service.Name = *in.Name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.PriceClient != nil {
		if in.PriceClient.IsNegative() {
			return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
		}
		service.PriceClient = *in.PriceClient
	}
	if in.PriceNonClient != nil {
		if in.PriceNonClient.IsNegative() {
			return nil, fmt.Errorf("%w: preço não pode ser negativo", domain.ErrInvalidInput)
		}
		service.PriceNonClient = *in.PriceNonClient
	}
	service.UpdatedAt = time.Now()

	if err := uc.serviceRepo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID devolve um serviço.
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	return toServiceResponse(service), nil
}

// List lista o catálogo de serviços.
func (uc *ServiceUseCase) List() ([]dto.ServiceResponse, error) {
	services, err := uc.serviceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, *toServiceResponse(s))
	}
	return out, nil
}

// Delete exclui um serviço.
func (uc *ServiceUseCase) Delete(id string) error {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	return uc.serviceRepo.Delete(id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		PriceClient:    s.PriceClient,
		PriceNonClient: s.PriceNonClient,
	}
}
