package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ast7/gestao-api/internal/application/auth"
	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/pkg/config"
	"github.com/ast7/gestao-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) CountByRole(string) (int, error) { return 0, nil }
func (r *fakeUserRepo) Update(u *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(id string) error { return nil }

const emailDomain = "@ast7.com.br"

var jwtCfg = config.JWTConfig{Secret: "segredo-de-teste", Expiration: 60, Issuer: "gestao-api"}

func setup(users ...*entity.User) (*auth.UseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return auth.NewUseCase(repo, jwtCfg, emailDomain), repo
}

func activeUser(password string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &entity.User{
		ID:           "u1",
		Name:         "João",
		Email:        "joao" + emailDomain,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		Active:       true,
		CreatedAt:    time.Now(),
	}
}

func TestLogin_TokenCarregaUserIDERole(t *testing.T) {
	uc, _ := setup(activeUser("senha-forte"))

	out, err := uc.Login(dto.LoginRequest{Email: "joao" + emailDomain, Password: "senha-forte"})
	require.NoError(t, err)
	assert.Equal(t, "u1", out.User.ID)

	userID, role, err := jwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, entity.RoleUser, role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc, _ := setup(activeUser("senha-forte"))
	_, err := uc.Login(dto.LoginRequest{Email: "joao" + emailDomain, Password: "outra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInativo(t *testing.T) {
	u := activeUser("senha-forte")
	u.Active = false
	uc, _ := setup(u)
	_, err := uc.Login(dto.LoginRequest{Email: u.Email, Password: "senha-forte"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailForaDoDominio(t *testing.T) {
	uc, _ := setup()
	_, err := uc.Login(dto.LoginRequest{Email: "joao@gmail.com", Password: "senha-forte"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_CriaUsuarioAtivoComHash(t *testing.T) {
	uc, repo := setup()

	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Nova Pessoa",
		Email:    "nova" + emailDomain,
		Password: "senha-forte",
	})
	require.NoError(t, err)
	assert.True(t, out.Active)
	assert.Equal(t, entity.RoleUser, out.Role, "papel default é user")

	stored := repo.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha-forte", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senha-forte")))
}

func TestRegister_EmailJaUsado(t *testing.T) {
	uc, _ := setup(activeUser("senha-forte"))
	_, err := uc.Register(dto.RegisterRequest{
		Name:     "Outra Pessoa",
		Email:    "joao" + emailDomain,
		Password: "senha-forte",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_Validacao(t *testing.T) {
	uc, _ := setup()
	cases := []struct {
		name string
		in   dto.RegisterRequest
	}{
		{"nome curto", dto.RegisterRequest{Name: "A", Email: "a" + emailDomain, Password: "senha-forte"}},
		{"senha curta", dto.RegisterRequest{Name: "Alguém", Email: "a" + emailDomain, Password: "curta"}},
		{"email fora do domínio", dto.RegisterRequest{Name: "Alguém", Email: "a@gmail.com", Password: "senha-forte"}},
		{"papel desconhecido", dto.RegisterRequest{Name: "Alguém", Email: "a" + emailDomain, Password: "senha-forte", Role: "root"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
