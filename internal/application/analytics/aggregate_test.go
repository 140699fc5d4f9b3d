package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ast7/gestao-api/internal/application/analytics"
	"github.com/ast7/gestao-api/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func revenue(v int64, t time.Time) *entity.FinancialEntry {
	return &entity.FinancialEntry{Type: entity.EntryTypeRevenue, Value: decimal.NewFromInt(v), Date: t}
}

func expense(v int64, t time.Time) *entity.FinancialEntry {
	return &entity.FinancialEntry{Type: entity.EntryTypeExpense, Value: decimal.NewFromInt(v), Date: t}
}

func TestMonthlyTotal_SomaApenasPeriodoETipo(t *testing.T) {
	entries := []*entity.FinancialEntry{
		revenue(1000, date(2026, time.January, 5)),
		revenue(2000, date(2026, time.January, 28)),
		revenue(500, date(2026, time.February, 1)), // outro mês
		expense(300, date(2026, time.January, 10)), // outro tipo
	}

	total := analytics.MonthlyTotal(entries, entity.EntryTypeRevenue, "2026-01")
	assert.True(t, total.Equal(decimal.NewFromInt(3000)))

	exp := analytics.MonthlyTotal(entries, entity.EntryTypeExpense, "2026-01")
	assert.True(t, exp.Equal(decimal.NewFromInt(300)))
}

// Mudar a data de um lançamento para fora do período o remove do
// agregado sem afetar os totais dos demais meses (sem dupla contagem).
func TestMonthlyTotal_SemDuplaContagem(t *testing.T) {
	e := revenue(1000, date(2026, time.January, 5))
	entries := []*entity.FinancialEntry{e, revenue(2000, date(2026, time.February, 5))}

	assert.True(t, analytics.MonthlyTotal(entries, entity.EntryTypeRevenue, "2026-01").Equal(decimal.NewFromInt(1000)))
	assert.True(t, analytics.MonthlyTotal(entries, entity.EntryTypeRevenue, "2026-02").Equal(decimal.NewFromInt(2000)))

	e.Date = date(2026, time.March, 5)
	assert.True(t, analytics.MonthlyTotal(entries, entity.EntryTypeRevenue, "2026-01").IsZero())
	assert.True(t, analytics.MonthlyTotal(entries, entity.EntryTypeRevenue, "2026-02").Equal(decimal.NewFromInt(2000)),
		"total dos outros meses não muda")
	assert.True(t, analytics.MonthlyTotal(entries, entity.EntryTypeRevenue, "2026-03").Equal(decimal.NewFromInt(1000)))
}

func TestMonthlyTotal_DataZeradaFicaFora(t *testing.T) {
	entries := []*entity.FinancialEntry{
		revenue(1000, date(2026, time.January, 5)),
		{Type: entity.EntryTypeRevenue, Value: decimal.NewFromInt(999)}, // sem data
	}
	total := analytics.MonthlyTotal(entries, entity.EntryTypeRevenue, "2026-01")
	assert.True(t, total.Equal(decimal.NewFromInt(1000)))
}

func TestNewClientsInPeriod(t *testing.T) {
	clients := []*entity.Client{
		{CreatedAt: date(2026, time.January, 2)},
		{CreatedAt: date(2026, time.January, 30)},
		{CreatedAt: date(2025, time.December, 31)},
		{}, // sem data de criação
	}
	assert.Equal(t, 2, analytics.NewClientsInPeriod(clients, "2026-01"))
}

func TestOpenOccurrences(t *testing.T) {
	occs := []*entity.Occurrence{
		{Status: entity.OccurrenceOpen},
		{Status: entity.OccurrenceInProgress},
		{Status: entity.OccurrenceAwaitingClient},
		{Status: entity.OccurrenceResolved},
		{Status: entity.OccurrenceCancelled},
	}
	assert.Equal(t, 2, analytics.OpenOccurrences(occs))
}

func TestOverdueOccurrences(t *testing.T) {
	now := date(2026, time.January, 15)
	occs := []*entity.Occurrence{
		{Status: entity.OccurrenceOpen, Deadline: date(2026, time.January, 14)},     // vencida
		{Status: entity.OccurrenceOpen, Deadline: date(2026, time.January, 20)},     // no prazo
		{Status: entity.OccurrenceResolved, Deadline: date(2026, time.January, 1)},  // resolvida não conta
		{Status: entity.OccurrenceCancelled, Deadline: date(2026, time.January, 1)}, // cancelada não conta
		{Status: entity.OccurrenceOpen}, // sem prazo
	}
	assert.Equal(t, 1, analytics.OverdueOccurrences(occs, now))
}

func TestSalesBySoftware_ExcluiDevolvidas(t *testing.T) {
	clients := []*entity.Client{
		{Licenses: []*entity.SoftwareLicense{
			{SoftwareName: "AST7 ERP", AcquisitionDate: date(2026, time.January, 3)},
			{SoftwareName: "AST7 ERP", AcquisitionDate: date(2026, time.January, 9)},
			{SoftwareName: "AST7 CRM", AcquisitionDate: date(2026, time.January, 9), Returned: true},
		}},
		{Licenses: []*entity.SoftwareLicense{
			{SoftwareName: "AST7 PDV", AcquisitionDate: date(2025, time.December, 9)}, // fora do período
		}},
	}

	out := analytics.SalesBySoftware(clients, "2026-01")
	require.Len(t, out, 1)
	assert.Equal(t, "AST7 ERP", out[0].Name)
	assert.Equal(t, 2, out[0].Count)
}

func TestSalesBySoftware_SemVendasDevolveParPadrao(t *testing.T) {
	out := analytics.SalesBySoftware(nil, "2026-01")
	require.Len(t, out, 2)
	assert.Equal(t, "AST7 ERP", out[0].Name)
	assert.Equal(t, 0, out[0].Count)
	assert.Equal(t, "AST7 CRM", out[1].Name)
}

func TestTrailingSeries_SeisMesesDoMaisAntigoAoAtual(t *testing.T) {
	now := date(2026, time.March, 31) // dia 31 cobre o salto de fim de mês
	entries := []*entity.FinancialEntry{
		revenue(1000, date(2026, time.March, 2)),
		expense(400, date(2026, time.February, 2)),
		revenue(700, date(2025, time.October, 15)),
		revenue(999, date(2025, time.September, 1)), // fora da janela de 6 meses
	}

	series := analytics.TrailingSeries(entries, now, 6)
	require.Len(t, series, 6)

	assert.Equal(t, "2025-10", series[0].Period)
	assert.Equal(t, "out", series[0].Month)
	assert.True(t, series[0].Revenue.Equal(decimal.NewFromInt(700)))

	assert.Equal(t, "2026-02", series[4].Period)
	assert.True(t, series[4].Expense.Equal(decimal.NewFromInt(400)))

	assert.Equal(t, "2026-03", series[5].Period)
	assert.Equal(t, "mar", series[5].Month)
	assert.True(t, series[5].Revenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, series[5].Expense.IsZero())
}
