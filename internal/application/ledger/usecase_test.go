package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/application/ledger"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
)

type fakeEntryRepo struct {
	entries map[string]*entity.FinancialEntry
}

func (r *fakeEntryRepo) Create(e *entity.FinancialEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}
func (r *fakeEntryRepo) GetByID(id string) (*entity.FinancialEntry, error) {
	if e, ok := r.entries[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeEntryRepo) List(int, int) ([]*entity.FinancialEntry, error) { return r.ListAll() }
func (r *fakeEntryRepo) ListAll() ([]*entity.FinancialEntry, error) {
	var out []*entity.FinancialEntry
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out, nil
}
func (r *fakeEntryRepo) ListByLicense(string) ([]*entity.FinancialEntry, error) { return nil, nil }
func (r *fakeEntryRepo) Update(e *entity.FinancialEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}
func (r *fakeEntryRepo) Delete(id string) error { delete(r.entries, id); return nil }
func (r *fakeEntryRepo) DeleteByLicense(string) error { return nil }

type fakeClientRepo struct{}

func (fakeClientRepo) Create(*entity.Client) error { return nil }
func (fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	if id == "c1" {
		return &entity.Client{ID: "c1", Name: "Acme"}, nil
	}
	return nil, nil
}
func (fakeClientRepo) GetByCNPJ(string) (*entity.Client, error) { return nil, nil }
func (fakeClientRepo) List(int, int) ([]*entity.Client, error)  { return nil, nil }
func (fakeClientRepo) ListAll() ([]*entity.Client, error)       { return nil, nil }
func (fakeClientRepo) Update(*entity.Client) error              { return nil }
func (fakeClientRepo) Delete(string) error                      { return nil }

type fakeSupplierRepo struct{}

func (fakeSupplierRepo) Create(*entity.Supplier) error { return nil }
func (fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if id == "f1" {
		return &entity.Supplier{ID: "f1", Name: "Fornecedora XYZ"}, nil
	}
	return nil, nil
}
func (fakeSupplierRepo) List() ([]*entity.Supplier, error) { return nil, nil }
func (fakeSupplierRepo) Update(*entity.Supplier) error     { return nil }
func (fakeSupplierRepo) Delete(string) error               { return nil }

func setup() (*ledger.UseCase, *fakeEntryRepo) {
	repo := &fakeEntryRepo{entries: map[string]*entity.FinancialEntry{}}
	return ledger.NewUseCase(repo, fakeClientRepo{}, fakeSupplierRepo{}), repo
}

func validCreate() dto.CreateFinancialEntryRequest {
	due := time.Now().Add(30 * 24 * time.Hour)
	return dto.CreateFinancialEntryRequest{
		Type:          entity.EntryTypeExpense,
		Description:   "Hospedagem mensal",
		Category:      "Infraestrutura",
		Value:         decimal.NewFromInt(350),
		Date:          time.Now().Add(-time.Hour),
		DueDate:       &due,
		PaymentMethod: "Nubank Jurídica",
	}
}

func TestCreate_DespesaComFornecedor(t *testing.T) {
	uc, _ := setup()
	in := validCreate()
	in.SupplierID = "f1"

	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "Fornecedora XYZ", out.SupplierName)
	assert.Equal(t, entity.EntryTypeExpense, out.Type)
}

func TestCreate_ReceitaComCliente(t *testing.T) {
	uc, _ := setup()
	in := validCreate()
	in.Type = entity.EntryTypeRevenue
	in.ClientID = "c1"

	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "Acme", out.ClientName)
	assert.Empty(t, out.LicenseID, "lançamento manual não tem vínculo com licença")
}

func TestCreate_Validacao(t *testing.T) {
	uc, _ := setup()
	future := time.Now().Add(48 * time.Hour)
	cases := []struct {
		name   string
		mutate func(*dto.CreateFinancialEntryRequest)
	}{
		{"tipo inválido", func(in *dto.CreateFinancialEntryRequest) { in.Type = "transferencia" }},
		{"descrição curta", func(in *dto.CreateFinancialEntryRequest) { in.Description = "ab" }},
		{"sem categoria", func(in *dto.CreateFinancialEntryRequest) { in.Category = "" }},
		{"valor zero", func(in *dto.CreateFinancialEntryRequest) { in.Value = decimal.Zero }},
		{"valor negativo", func(in *dto.CreateFinancialEntryRequest) { in.Value = decimal.NewFromInt(-10) }},
		{"data futura", func(in *dto.CreateFinancialEntryRequest) { in.Date = future }},
		{"sem vencimento", func(in *dto.CreateFinancialEntryRequest) { in.DueDate = nil }},
		{"forma de pagamento desconhecida", func(in *dto.CreateFinancialEntryRequest) { in.PaymentMethod = "Cheque" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreate()
			tc.mutate(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Valor atualizado para zero é rejeitado, mas o patch tipado garante que
// zerar não acontece por omissão de campo (bug da versão dinâmica).
func TestUpdate_PatchParcial(t *testing.T) {
	uc, repo := setup()
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	desc := "Hospedagem mensal (reajuste)"
	out, err := uc.Update(created.ID, dto.UpdateFinancialEntryRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, out.Description)
	assert.True(t, out.Value.Equal(decimal.NewFromInt(350)), "campos omitidos não mudam")

	stored := repo.entries[created.ID]
	assert.Equal(t, desc, stored.Description)
}

func TestUpdate_RemoverFornecedorComStringVazia(t *testing.T) {
	uc, _ := setup()
	in := validCreate()
	in.SupplierID = "f1"
	created, err := uc.Create(in)
	require.NoError(t, err)

	empty := ""
	out, err := uc.Update(created.ID, dto.UpdateFinancialEntryRequest{SupplierID: &empty})
	require.NoError(t, err)
	assert.Empty(t, out.SupplierID)
	assert.Empty(t, out.SupplierName)
}

func TestDelete_Inexistente(t *testing.T) {
	uc, _ := setup()
	assert.ErrorIs(t, uc.Delete("nope"), domain.ErrNotFound)
}
