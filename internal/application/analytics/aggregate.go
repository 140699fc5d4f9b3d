// Package analytics deriva os KPIs e as séries de gráfico do dashboard.
// Tudo é recomputado a cada chamada a partir das listas de entidades;
// não há cache nem manutenção incremental.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/domain/entity"
)

// PeriodLayout é o formato dos períodos selecionáveis ("YYYY-MM").
const PeriodLayout = "2006-01"

// Par padrão exibido no gráfico de vendas quando o período não tem
// nenhuma venda, para o gráfico não ficar vazio.
var defaultSalesPair = []dto.SoftwareSalesDTO{
	{Name: "AST7 ERP", Count: 0},
	{Name: "AST7 CRM", Count: 0},
}

// inPeriod informa se a data cai no período "YYYY-MM". Datas zeradas
// nunca casam (lançamentos sem data ficam fora dos agregados).
func inPeriod(t time.Time, period string) bool {
	if t.IsZero() {
		return false
	}
	return t.Format(PeriodLayout) == period
}

// MonthlyTotal soma o valor dos lançamentos do tipo dado cuja data cai
// no período.
func MonthlyTotal(entries []*entity.FinancialEntry, entryType, period string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Type == entryType && inPeriod(e.Date, period) {
			total = total.Add(e.Value)
		}
	}
	return total
}

// NewClientsInPeriod conta clientes criados no período.
func NewClientsInPeriod(clients []*entity.Client, period string) int {
	n := 0
	for _, c := range clients {
		if inPeriod(c.CreatedAt, period) {
			n++
		}
	}
	return n
}

// OpenOccurrences conta ocorrências com status aberta ou em andamento.
func OpenOccurrences(occs []*entity.Occurrence) int {
	n := 0
	for _, o := range occs {
		if o.Status == entity.OccurrenceOpen || o.Status == entity.OccurrenceInProgress {
			n++
		}
	}
	return n
}

// OverdueOccurrences conta ocorrências não finalizadas com prazo vencido.
func OverdueOccurrences(occs []*entity.Occurrence, now time.Time) int {
	n := 0
	for _, o := range occs {
		if o.Overdue(now) {
			n++
		}
	}
	return n
}

// SalesBySoftware conta, por software, as licenças não devolvidas
// adquiridas no período. Licenças devolvidas ficam de fora independente
// da data de aquisição. Sem vendas, devolve o par padrão zerado.
func SalesBySoftware(clients []*entity.Client, period string) []dto.SoftwareSalesDTO {
	counts := map[string]int{}
	for _, c := range clients {
		for _, l := range c.Licenses {
			if l.Returned || !inPeriod(l.AcquisitionDate, period) {
				continue
			}
			counts[l.SoftwareName]++
		}
	}
	if len(counts) == 0 {
		out := make([]dto.SoftwareSalesDTO, len(defaultSalesPair))
		copy(out, defaultSalesPair)
		return out
	}
	out := make([]dto.SoftwareSalesDTO, 0, len(counts))
	for name, count := range counts {
		out = append(out, dto.SoftwareSalesDTO{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

var monthLabels = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// TrailingSeries computa receita e despesa mês a mês para os últimos
// `months` meses-calendário (do mais antigo ao atual).
func TrailingSeries(entries []*entity.FinancialEntry, now time.Time, months int) []dto.MonthSeriesDTO {
	out := make([]dto.MonthSeriesDTO, 0, months)
	for i := months - 1; i >= 0; i-- {
		// Dia 1 evita o salto de fim de mês do AddDate (ex: 31/mar - 1 mês)
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		period := m.Format(PeriodLayout)
		out = append(out, dto.MonthSeriesDTO{
			Month:   monthLabels[m.Month()-1],
			Period:  period,
			Revenue: MonthlyTotal(entries, entity.EntryTypeRevenue, period),
			Expense: MonthlyTotal(entries, entity.EntryTypeExpense, period),
		})
	}
	return out
}
