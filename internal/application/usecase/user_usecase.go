package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

// UserUseCase casos de uso de perfis de usuário. A criação com senha
// fica no pacote auth; aqui ficam listagem, edição, ativação e exclusão.
type UserUseCase struct {
	userRepo    repository.UserRepository
	emailDomain string
}

// NewUserUseCase constrói o caso de uso. emailDomain é o sufixo
// corporativo exigido nos emails (ex: "@ast7.com.br").
func NewUserUseCase(userRepo repository.UserRepository, emailDomain string) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, emailDomain: emailDomain}
}

// Update aplica uma atualização parcial tipada ao perfil.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Name != nil {
		if len(*in.Name) < 2 {
			return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
		}
		user.Name = *in.Name
	}
	if in.Email != nil {
		if !strings.HasSuffix(*in.Email, uc.emailDomain) {
			return nil, fmt.Errorf("%w: email deve ser do domínio %s", domain.ErrInvalidInput, uc.emailDomain)
		}
		other, err := uc.userRepo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Role != nil {
		if *in.Role != entity.RoleAdmin && *in.Role != entity.RoleUser {
			return nil, fmt.Errorf("%w: papel desconhecido", domain.ErrInvalidInput)
		}
		// Rebaixar o último admin deixaria o sistema sem administração.
		if user.Role == entity.RoleAdmin && *in.Role != entity.RoleAdmin {
			admins, err := uc.userRepo.CountByRole(entity.RoleAdmin)
			if err != nil {
				return nil, err
			}
			if admins <= 1 {
				return nil, domain.ErrLastAdmin
			}
		}
		user.Role = *in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID devolve um perfil.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List lista os perfis.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Delete exclui um perfil. O último admin nunca é excluído.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.Role == entity.RoleAdmin {
		admins, err := uc.userRepo.CountByRole(entity.RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}
	return uc.userRepo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
