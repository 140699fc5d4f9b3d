package repository

import "github.com/ast7/gestao-api/internal/domain/entity"

// OccurrenceRepository porta de persistência de ocorrências.
type OccurrenceRepository interface {
	Create(occ *entity.Occurrence) error
	GetByID(id string) (*entity.Occurrence, error)
	List(limit, offset int) ([]*entity.Occurrence, error)
	ListAll() ([]*entity.Occurrence, error)
	Update(occ *entity.Occurrence) error
	Delete(id string) error
}
