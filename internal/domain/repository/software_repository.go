package repository

import "github.com/ast7/gestao-api/internal/domain/entity"

// SoftwareRepository porta de persistência do catálogo de softwares.
type SoftwareRepository interface {
	Create(software *entity.Software) error
	GetByID(id string) (*entity.Software, error)
	List() ([]*entity.Software, error)
	Update(software *entity.Software) error
	Delete(id string) error
}
