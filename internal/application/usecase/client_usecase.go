// Package usecase reúne os casos de uso de cadastro: clientes,
// mensalidades, catálogo (softwares, serviços), registros auxiliares
// (fornecedores, categorias de despesa), perfis de usuário e dados da
// empresa.
package usecase

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes.
type ClientUseCase struct {
	clientRepo  repository.ClientRepository
	licenseRepo repository.LicenseRepository
	feeRepo     repository.MonthlyFeeRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(
	clientRepo repository.ClientRepository,
	licenseRepo repository.LicenseRepository,
	feeRepo repository.MonthlyFeeRepository,
) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, licenseRepo: licenseRepo, feeRepo: feeRepo}
}

// Create cadastra um cliente. O CNPJ é único.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := validateClient(in.Name, in.CNPJ, in.ContactName, in.Email, in.WhatsApp, in.Address); err != nil {
		return nil, err
	}

	existing, err := uc.clientRepo.GetByCNPJ(in.CNPJ)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: já existe cliente com este CNPJ", domain.ErrDuplicate)
	}

	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		Name:        in.Name,
		CNPJ:        in.CNPJ,
		ContactName: in.ContactName,
		Email:       in.Email,
		WhatsApp:    in.WhatsApp,
		Address:     in.Address,
		Active:      in.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update aplica uma atualização parcial tipada.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.loadClient(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if len(*in.Name) < 2 {
			return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
		}
		client.Name = *in.Name
	}
	if in.CNPJ != nil {
		if len(*in.CNPJ) < 14 {
			return nil, fmt.Errorf("%w: CNPJ inválido", domain.ErrInvalidInput)
		}
		other, err := uc.clientRepo.GetByCNPJ(*in.CNPJ)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != client.ID {
			return nil, fmt.Errorf("%w: já existe cliente com este CNPJ", domain.ErrDuplicate)
		}
		client.CNPJ = *in.CNPJ
	}
	if in.ContactName != nil {
		if len(*in.ContactName) < 2 {
			return nil, fmt.Errorf("%w: nome do contato obrigatório", domain.ErrInvalidInput)
		}
		client.ContactName = *in.ContactName
	}
	if in.Email != nil {
		if _, err := mail.ParseAddress(*in.Email); err != nil {
			return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
		}
		client.Email = *in.Email
	}
	if in.WhatsApp != nil {
		if len(*in.WhatsApp) < 10 {
			return nil, fmt.Errorf("%w: whatsapp inválido", domain.ErrInvalidInput)
		}
		client.WhatsApp = *in.WhatsApp
	}
	if in.Address != nil {
		if len(*in.Address) < 5 {
			return nil, fmt.Errorf("%w: endereço obrigatório", domain.ErrInvalidInput)
		}
		client.Address = *in.Address
	}
	if in.Active != nil {
		client.Active = *in.Active
	}
	client.UpdatedAt = time.Now()

	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return uc.withRelations(client)
}

// GetByID devolve o cliente com licenças e mensalidades aninhadas.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.loadClient(id)
	if err != nil {
		return nil, err
	}
	return uc.withRelations(client)
}

// List lista clientes com paginação, cada um com suas relações.
func (uc *ClientUseCase) List(limit, offset int) ([]dto.ClientResponse, error) {
	clients, err := uc.clientRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		resp, err := uc.withRelations(c)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Delete exclui o cliente.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(id)
}

func (uc *ClientUseCase) loadClient(id string) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func (uc *ClientUseCase) withRelations(client *entity.Client) (*dto.ClientResponse, error) {
	licenses, err := uc.licenseRepo.ListByClient(client.ID)
	if err != nil {
		return nil, err
	}
	fees, err := uc.feeRepo.ListByClient(client.ID)
	if err != nil {
		return nil, err
	}
	resp := toClientResponse(client)
	for _, l := range licenses {
		resp.Licenses = append(resp.Licenses, dto.LicenseResponse{
			ID:              l.ID,
			ClientID:        l.ClientID,
			SoftwareID:      l.SoftwareID,
			SoftwareName:    l.SoftwareName,
			Type:            l.Type,
			AcquisitionDate: l.AcquisitionDate,
			Price:           l.Price,
			Returned:        l.Returned,
		})
	}
	for _, f := range fees {
		resp.MonthlyFees = append(resp.MonthlyFees, toFeeResponse(f))
	}
	return resp, nil
}

func validateClient(name, cnpj, contactName, email, whatsapp, address string) error {
	switch {
	case len(name) < 2:
		return fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	case len(cnpj) < 14:
		return fmt.Errorf("%w: CNPJ inválido", domain.ErrInvalidInput)
	case len(contactName) < 2:
		return fmt.Errorf("%w: nome do contato obrigatório", domain.ErrInvalidInput)
	case len(whatsapp) < 10:
		return fmt.Errorf("%w: whatsapp inválido", domain.ErrInvalidInput)
	case len(address) < 5:
		return fmt.Errorf("%w: endereço obrigatório", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	return nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		CNPJ:        c.CNPJ,
		ContactName: c.ContactName,
		Email:       c.Email,
		WhatsApp:    c.WhatsApp,
		Address:     c.Address,
		Active:      c.Active,
		Licenses:    []dto.LicenseResponse{},
		MonthlyFees: []dto.MonthlyFeeResponse{},
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
