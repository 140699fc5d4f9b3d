package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/application/usecase"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
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
func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *fakeUserRepo) CountByRole(role string) (int, error) {
	n := 0
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}
func (r *fakeUserRepo) Delete(id string) error { delete(r.users, id); return nil }

const emailDomain = "@ast7.com.br"

func admin(id, email string) *entity.User {
	return &entity.User{ID: id, Name: "Admin", Email: email, Role: entity.RoleAdmin, Active: true, CreatedAt: time.Now()}
}

func TestDelete_UltimoAdminNaoSai(t *testing.T) {
	repo := newFakeUserRepo(admin("a1", "a1"+emailDomain))
	uc := usecase.NewUserUseCase(repo, emailDomain)

	err := uc.Delete("a1")
	assert.ErrorIs(t, err, domain.ErrLastAdmin)
	assert.Contains(t, repo.users, "a1")
}

func TestDelete_AdminSaiQuandoHaOutro(t *testing.T) {
	repo := newFakeUserRepo(admin("a1", "a1"+emailDomain), admin("a2", "a2"+emailDomain))
	uc := usecase.NewUserUseCase(repo, emailDomain)

	require.NoError(t, uc.Delete("a1"))
	assert.NotContains(t, repo.users, "a1")
}

func TestUpdate_RebaixarUltimoAdminFalha(t *testing.T) {
	repo := newFakeUserRepo(admin("a1", "a1"+emailDomain))
	uc := usecase.NewUserUseCase(repo, emailDomain)

	role := entity.RoleUser
	_, err := uc.Update("a1", dto.UpdateUserRequest{Role: &role})
	assert.ErrorIs(t, err, domain.ErrLastAdmin)
	assert.Equal(t, entity.RoleAdmin, repo.users["a1"].Role)
}

func TestUpdate_EmailForaDoDominio(t *testing.T) {
	repo := newFakeUserRepo(admin("a1", "a1"+emailDomain))
	uc := usecase.NewUserUseCase(repo, emailDomain)

	email := "a1@gmail.com"
	_, err := uc.Update("a1", dto.UpdateUserRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_EmailJaUsado(t *testing.T) {
	repo := newFakeUserRepo(admin("a1", "a1"+emailDomain), admin("a2", "a2"+emailDomain))
	uc := usecase.NewUserUseCase(repo, emailDomain)

	email := "a2" + emailDomain
	_, err := uc.Update("a1", dto.UpdateUserRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUpdate_DesativarUsuario(t *testing.T) {
	repo := newFakeUserRepo(admin("a1", "a1"+emailDomain), admin("a2", "a2"+emailDomain))
	uc := usecase.NewUserUseCase(repo, emailDomain)

	active := false
	out, err := uc.Update("a2", dto.UpdateUserRequest{Active: &active})
	require.NoError(t, err)
	assert.False(t, out.Active)
	assert.False(t, repo.users["a2"].Active)
}

func TestUpdate_UsuarioInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), emailDomain)
	name := "Novo Nome"
	_, err := uc.Update("nope", dto.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
