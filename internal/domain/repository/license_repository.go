package repository

import "github.com/ast7/gestao-api/internal/domain/entity"

// LicenseRepository porta de persistência de licenças de software.
type LicenseRepository interface {
	Create(license *entity.SoftwareLicense) error
	GetByID(id string) (*entity.SoftwareLicense, error)
	ListByClient(clientID string) ([]*entity.SoftwareLicense, error)
	Update(license *entity.SoftwareLicense) error
	Delete(id string) error
}
