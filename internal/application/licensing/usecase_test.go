package licensing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/application/licensing"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória. O fakeTxRunner clona o estado antes de executar o
// callback e só efetiva no sucesso, imitando commit/rollback do Postgres.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	clients   map[string]*entity.Client
	softwares map[string]*entity.Software
	licenses  map[string]*entity.SoftwareLicense
	entries   map[string]*entity.FinancialEntry

	failEntryCreate bool
}

func newMemStore() *memStore {
	return &memStore{
		clients:   map[string]*entity.Client{},
		softwares: map[string]*entity.Software{},
		licenses:  map[string]*entity.SoftwareLicense{},
		entries:   map[string]*entity.FinancialEntry{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.failEntryCreate = s.failEntryCreate
	for k, v := range s.licenses {
		cp := *v
		c.licenses[k] = &cp
	}
	for k, v := range s.entries {
		cp := *v
		c.entries[k] = &cp
	}
	return c
}

type fakeClientRepo struct{ s *memStore }

func (r *fakeClientRepo) Create(c *entity.Client) error { r.s.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.s.clients[id], nil
}
func (r *fakeClientRepo) GetByCNPJ(string) (*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) List(int, int) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) ListAll() ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(*entity.Client) error { return nil }
func (r *fakeClientRepo) Delete(string) error { return nil }

type fakeSoftwareRepo struct{ s *memStore }

func (r *fakeSoftwareRepo) Create(sw *entity.Software) error { r.s.softwares[sw.ID] = sw; return nil }
func (r *fakeSoftwareRepo) GetByID(id string) (*entity.Software, error) {
	return r.s.softwares[id], nil
}
func (r *fakeSoftwareRepo) List() ([]*entity.Software, error) { return nil, nil }
func (r *fakeSoftwareRepo) Update(*entity.Software) error { return nil }
func (r *fakeSoftwareRepo) Delete(string) error { return nil }

type fakeLicenseRepo struct{ s *memStore }

func (r *fakeLicenseRepo) Create(l *entity.SoftwareLicense) error {
	cp := *l
	r.s.licenses[l.ID] = &cp
	return nil
}
func (r *fakeLicenseRepo) GetByID(id string) (*entity.SoftwareLicense, error) {
	if l, ok := r.s.licenses[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeLicenseRepo) ListByClient(clientID string) ([]*entity.SoftwareLicense, error) {
	var out []*entity.SoftwareLicense
	for _, l := range r.s.licenses {
		if l.ClientID == clientID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeLicenseRepo) Update(l *entity.SoftwareLicense) error {
	cp := *l
	r.s.licenses[l.ID] = &cp
	return nil
}
func (r *fakeLicenseRepo) Delete(id string) error { delete(r.s.licenses, id); return nil }

type fakeEntryRepo struct{ s *memStore }

func (r *fakeEntryRepo) Create(e *entity.FinancialEntry) error {
	if r.s.failEntryCreate {
		return errors.New("falha simulada no insert do lançamento")
	}
	cp := *e
	r.s.entries[e.ID] = &cp
	return nil
}
func (r *fakeEntryRepo) GetByID(id string) (*entity.FinancialEntry, error) {
	return r.s.entries[id], nil
}
func (r *fakeEntryRepo) List(int, int) ([]*entity.FinancialEntry, error) { return nil, nil }
func (r *fakeEntryRepo) ListAll() ([]*entity.FinancialEntry, error) {
	var out []*entity.FinancialEntry
	for _, e := range r.s.entries {
		out = append(out, e)
	}
	return out, nil
}
func (r *fakeEntryRepo) ListByLicense(licenseID string) ([]*entity.FinancialEntry, error) {
	var out []*entity.FinancialEntry
	for _, e := range r.s.entries {
		if e.LicenseID == licenseID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeEntryRepo) Update(*entity.FinancialEntry) error { return nil }
func (r *fakeEntryRepo) Delete(id string) error { delete(r.s.entries, id); return nil }
func (r *fakeEntryRepo) DeleteByLicense(licenseID string) error {
	for id, e := range r.s.entries {
		if e.LicenseID == licenseID {
			delete(r.s.entries, id)
		}
	}
	return nil
}

type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.LicenseRepository, repository.FinancialEntryRepository) error) error {
	tx := t.s.clone()
	if err := fn(&fakeLicenseRepo{s: tx}, &fakeEntryRepo{s: tx}); err != nil {
		return err // rollback: estado original intacto
	}
	t.s.licenses = tx.licenses
	t.s.entries = tx.entries
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

func setup() (*licensing.LicenseUseCase, *memStore) {
	s := newMemStore()
	s.clients["c1"] = &entity.Client{ID: "c1", Name: "Acme", CreatedAt: time.Now()}
	s.softwares["sw1"] = &entity.Software{
		ID:           "sw1",
		Name:         "AST7 ERP",
		PriceUnitary: decimal.NewFromInt(1500),
		PriceNetwork: decimal.NewFromInt(3000),
		PriceCloud:   decimal.NewFromInt(2000),
	}
	uc := licensing.NewLicenseUseCase(
		&fakeTxRunner{s: s},
		&fakeClientRepo{s: s},
		&fakeSoftwareRepo{s: s},
		&fakeLicenseRepo{s: s},
		&fakeEntryRepo{s: s},
	)
	return uc, s
}

func entriesForLicense(s *memStore, licenseID string) []*entity.FinancialEntry {
	var out []*entity.FinancialEntry
	for _, e := range s.entries {
		if e.LicenseID == licenseID {
			out = append(out, e)
		}
	}
	return out
}

func TestSell_CriaLicencaEUmLancamentoDeReceita(t *testing.T) {
	uc, s := setup()

	lic, err := uc.Sell(context.Background(), "c1", dto.SellLicenseRequest{
		SoftwareID: "sw1",
		Type:       entity.LicenseTypeNetwork,
		Price:      decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	require.NotNil(t, lic)
	assert.Equal(t, "AST7 ERP", lic.SoftwareName)
	assert.False(t, lic.Returned)

	linked := entriesForLicense(s, lic.ID)
	require.Len(t, linked, 1, "deve existir exatamente um lançamento vinculado")
	entry := linked[0]
	assert.Equal(t, entity.EntryTypeRevenue, entry.Type)
	assert.Equal(t, "Venda Software", entry.Category)
	assert.Equal(t, "Aquisição de Licença: AST7 ERP (Network)", entry.Description)
	assert.True(t, entry.Value.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, "c1", entry.ClientID)
	assert.Equal(t, "Acme", entry.ClientName)
}

func TestSell_PrecoZeroUsaTabelaDoSoftware(t *testing.T) {
	uc, s := setup()

	lic, err := uc.Sell(context.Background(), "c1", dto.SellLicenseRequest{
		SoftwareID: "sw1",
		Type:       entity.LicenseTypeCloud,
	})
	require.NoError(t, err)
	assert.True(t, lic.Price.Equal(decimal.NewFromInt(2000)))

	linked := entriesForLicense(s, lic.ID)
	require.Len(t, linked, 1)
	assert.True(t, linked[0].Value.Equal(decimal.NewFromInt(2000)))
}

func TestSell_ModalidadeInvalida(t *testing.T) {
	uc, _ := setup()
	_, err := uc.Sell(context.Background(), "c1", dto.SellLicenseRequest{
		SoftwareID: "sw1",
		Type:       "Desktop",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSell_ClienteInexistente(t *testing.T) {
	uc, _ := setup()
	_, err := uc.Sell(context.Background(), "nope", dto.SellLicenseRequest{
		SoftwareID: "sw1",
		Type:       entity.LicenseTypeUnitary,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestSell_FalhaNoLancamentoNaoDeixaLicencaOrfa cobre a atomicidade: se
// o insert do lançamento falhar, a licença não pode ficar gravada.
func TestSell_FalhaNoLancamentoNaoDeixaLicencaOrfa(t *testing.T) {
	uc, s := setup()
	s.failEntryCreate = true

	_, err := uc.Sell(context.Background(), "c1", dto.SellLicenseRequest{
		SoftwareID: "sw1",
		Type:       entity.LicenseTypeUnitary,
	})
	require.Error(t, err)
	assert.Empty(t, s.licenses, "rollback deve descartar a licença")
	assert.Empty(t, s.entries)
}

func TestReturn_RemoveLancamentoEEIdempotente(t *testing.T) {
	uc, s := setup()
	lic, err := uc.Sell(context.Background(), "c1", dto.SellLicenseRequest{
		SoftwareID: "sw1",
		Type:       entity.LicenseTypeNetwork,
		Price:      decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	require.Len(t, entriesForLicense(s, lic.ID), 1)

	returned, err := uc.Return(context.Background(), lic.ID)
	require.NoError(t, err)
	assert.True(t, returned.Returned)
	assert.Empty(t, entriesForLicense(s, lic.ID), "devolução remove o lançamento")

	// Devolver de novo: no-op, sem erro
	again, err := uc.Return(context.Background(), lic.ID)
	require.NoError(t, err)
	assert.True(t, again.Returned)
	assert.Empty(t, entriesForLicense(s, lic.ID))
}

func TestDelete_CascataNosLancamentos(t *testing.T) {
	uc, s := setup()
	lic, err := uc.Sell(context.Background(), "c1", dto.SellLicenseRequest{
		SoftwareID: "sw1",
		Type:       entity.LicenseTypeUnitary,
		Price:      decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), lic.ID))
	assert.Empty(t, s.licenses)
	assert.Empty(t, s.entries)
}

// TestUpdate_PrecoNaoReajustaLancamento preserva o comportamento
// observado: editar o preço depois da venda não altera o lançamento já
// registrado.
func TestUpdate_PrecoNaoReajustaLancamento(t *testing.T) {
	uc, s := setup()
	lic, err := uc.Sell(context.Background(), "c1", dto.SellLicenseRequest{
		SoftwareID: "sw1",
		Type:       entity.LicenseTypeNetwork,
		Price:      decimal.NewFromInt(3000),
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(5000)
	updated, err := uc.Update(lic.ID, dto.UpdateLicenseRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))

	linked := entriesForLicense(s, lic.ID)
	require.Len(t, linked, 1)
	assert.True(t, linked[0].Value.Equal(decimal.NewFromInt(3000)),
		"lançamento mantém o valor da venda original")
}

// Cenário completo do fluxo Acme: venda de 3000 aparece no total do
// período e some após a devolução.
func TestCenarioAcme_VendaEDevolucao(t *testing.T) {
	uc, s := setup()

	lic, err := uc.Sell(context.Background(), "c1", dto.SellLicenseRequest{
		SoftwareID: "sw1",
		Type:       entity.LicenseTypeNetwork,
		Price:      decimal.NewFromInt(3000),
	})
	require.NoError(t, err)

	total := decimal.Zero
	for _, e := range s.entries {
		if e.Type == entity.EntryTypeRevenue {
			total = total.Add(e.Value)
		}
	}
	assert.True(t, total.Equal(decimal.NewFromInt(3000)))

	_, err = uc.Return(context.Background(), lic.ID)
	require.NoError(t, err)

	total = decimal.Zero
	for _, e := range s.entries {
		if e.Type == entity.EntryTypeRevenue {
			total = total.Add(e.Value)
		}
	}
	assert.True(t, total.IsZero(), "receita do período cai exatamente 3000")
}
