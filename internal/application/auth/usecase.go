// Package auth implementa login com JWT e o cadastro de usuários com
// senha (restrito a administradores).
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
	"github.com/ast7/gestao-api/pkg/config"
	"github.com/ast7/gestao-api/pkg/jwt"
)

// UseCase casos de uso de autenticação.
type UseCase struct {
	userRepo    repository.UserRepository
	jwtCfg      config.JWTConfig
	emailDomain string
}

// NewUseCase constrói o caso de uso.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig, emailDomain string) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg, emailDomain: emailDomain}
}

// Login autentica por email e senha e devolve um token JWT. Credencial
// errada, usuário inexistente e usuário inativo devolvem o mesmo
// ErrUnauthorized, sem revelar qual foi o caso.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email e senha obrigatórios", domain.ErrInvalidInput)
	}
	if !strings.HasSuffix(in.Email, uc.emailDomain) {
		return nil, fmt.Errorf("%w: email deve ser do domínio %s", domain.ErrInvalidInput, uc.emailDomain)
	}

	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("gerar token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			Active:    user.Active,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// Register cria um usuário com senha. Só administradores chamam esta
// operação (o middleware barra os demais); o papel default é user.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	switch {
	case len(in.Name) < 2:
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	case len(in.Password) < 8:
		return nil, fmt.Errorf("%w: senha deve ter pelo menos 8 caracteres", domain.ErrInvalidInput)
	case !strings.HasSuffix(in.Email, uc.emailDomain):
		return nil, fmt.Errorf("%w: email deve ser do domínio %s", domain.ErrInvalidInput, uc.emailDomain)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return nil, fmt.Errorf("%w: papel desconhecido", domain.ErrInvalidInput)
	}

	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("gerar hash de senha: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}, nil
}
