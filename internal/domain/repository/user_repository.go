package repository

import "github.com/ast7/gestao-api/internal/domain/entity"

// UserRepository porta de persistência de perfis de usuário.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	CountByRole(role string) (int, error)
	Update(user *entity.User) error
	Delete(id string) error
}
