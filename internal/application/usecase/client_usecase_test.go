package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/application/usecase"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
)

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	if c, ok := r.clients[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeClientRepo) GetByCNPJ(cnpj string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.CNPJ == cnpj {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeClientRepo) List(int, int) ([]*entity.Client, error) { return r.ListAll() }
func (r *fakeClientRepo) ListAll() ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeClientRepo) Update(c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}
func (r *fakeClientRepo) Delete(id string) error { delete(r.clients, id); return nil }

type fakeLicenseRepo struct {
	licenses []*entity.SoftwareLicense
}

func (r *fakeLicenseRepo) Create(*entity.SoftwareLicense) error { return nil }
func (r *fakeLicenseRepo) GetByID(string) (*entity.SoftwareLicense, error) { return nil, nil }
func (r *fakeLicenseRepo) Update(*entity.SoftwareLicense) error { return nil }
func (r *fakeLicenseRepo) Delete(string) error { return nil }
func (r *fakeLicenseRepo) ListByClient(clientID string) ([]*entity.SoftwareLicense, error) {
	var out []*entity.SoftwareLicense
	for _, l := range r.licenses {
		if l.ClientID == clientID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeFeeRepo struct {
	fees []*entity.MonthlyFee
}

func (r *fakeFeeRepo) Create(*entity.MonthlyFee) error { return nil }
func (r *fakeFeeRepo) GetByID(string) (*entity.MonthlyFee, error) { return nil, nil }
func (r *fakeFeeRepo) Update(*entity.MonthlyFee) error { return nil }
func (r *fakeFeeRepo) Delete(string) error { return nil }
func (r *fakeFeeRepo) ListByClient(clientID string) ([]*entity.MonthlyFee, error) {
	var out []*entity.MonthlyFee
	for _, f := range r.fees {
		if f.ClientID == clientID {
			out = append(out, f)
		}
	}
	return out, nil
}

func setupClients() (*usecase.ClientUseCase, *fakeClientRepo, *fakeLicenseRepo, *fakeFeeRepo) {
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{}}
	licenseRepo := &fakeLicenseRepo{}
	feeRepo := &fakeFeeRepo{}
	return usecase.NewClientUseCase(clientRepo, licenseRepo, feeRepo), clientRepo, licenseRepo, feeRepo
}

func validClient() dto.CreateClientRequest {
	return dto.CreateClientRequest{
		Name:        "Acme Sistemas",
		CNPJ:        "12.345.678/0001-90",
		ContactName: "Maria Souza",
		Email:       "maria@acme.com.br",
		WhatsApp:    "11999990000",
		Address:     "Rua das Flores, 100",
		Active:      true,
	}
}

func TestCreateClient_CNPJDuplicadoFalha(t *testing.T) {
	uc, _, _, _ := setupClients()

	_, err := uc.Create(validClient())
	require.NoError(t, err)

	dup := validClient()
	dup.Name = "Outra Empresa"
	_, err = uc.Create(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateClient_Validacao(t *testing.T) {
	uc, _, _, _ := setupClients()
	cases := []struct {
		name   string
		mutate func(*dto.CreateClientRequest)
	}{
		{"nome curto", func(in *dto.CreateClientRequest) { in.Name = "A" }},
		{"cnpj curto", func(in *dto.CreateClientRequest) { in.CNPJ = "123" }},
		{"contato curto", func(in *dto.CreateClientRequest) { in.ContactName = "X" }},
		{"email inválido", func(in *dto.CreateClientRequest) { in.Email = "sem-arroba" }},
		{"whatsapp curto", func(in *dto.CreateClientRequest) { in.WhatsApp = "119" }},
		{"endereço curto", func(in *dto.CreateClientRequest) { in.Address = "Rua" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validClient()
			tc.mutate(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGetClient_AninhaLicencasEMensalidades(t *testing.T) {
	uc, _, licenseRepo, feeRepo := setupClients()

	created, err := uc.Create(validClient())
	require.NoError(t, err)

	licenseRepo.licenses = []*entity.SoftwareLicense{
		{ID: "l1", ClientID: created.ID, SoftwareName: "AST7 ERP", Type: entity.LicenseTypeUnitary},
		{ID: "l2", ClientID: "outro", SoftwareName: "AST7 CRM", Type: entity.LicenseTypeCloud},
	}
	feeRepo.fees = []*entity.MonthlyFee{
		{ID: "f1", ClientID: created.ID, Description: "Suporte mensal", Value: decimal.NewFromInt(200), DueDay: 10, Active: true},
	}

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.Len(t, out.Licenses, 1)
	assert.Equal(t, "AST7 ERP", out.Licenses[0].SoftwareName)
	require.Len(t, out.MonthlyFees, 1)
	assert.Equal(t, 10, out.MonthlyFees[0].DueDay)
}

func TestUpdateClient_PatchParcialPreservaCampos(t *testing.T) {
	uc, repo, _, _ := setupClients()

	created, err := uc.Create(validClient())
	require.NoError(t, err)

	active := false
	out, err := uc.Update(created.ID, dto.UpdateClientRequest{Active: &active})
	require.NoError(t, err)
	assert.False(t, out.Active)
	assert.Equal(t, "Acme Sistemas", out.Name, "campos omitidos não mudam")
	assert.Equal(t, "Acme Sistemas", repo.clients[created.ID].Name)
}

func TestUpdateClient_CNPJDeOutroClienteFalha(t *testing.T) {
	uc, _, _, _ := setupClients()

	first, err := uc.Create(validClient())
	require.NoError(t, err)

	second := validClient()
	second.CNPJ = "98.765.432/0001-10"
	other, err := uc.Create(second)
	require.NoError(t, err)

	cnpj := first.CNPJ
	_, err = uc.Update(other.ID, dto.UpdateClientRequest{CNPJ: &cnpj})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDeleteClient_Inexistente(t *testing.T) {
	uc, _, _, _ := setupClients()
	assert.ErrorIs(t, uc.Delete("nope"), domain.ErrNotFound)
}
