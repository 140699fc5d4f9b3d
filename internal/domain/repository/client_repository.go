package repository

import "github.com/ast7/gestao-api/internal/domain/entity"

// ClientRepository porta de persistência de clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByCNPJ(cnpj string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	ListAll() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
