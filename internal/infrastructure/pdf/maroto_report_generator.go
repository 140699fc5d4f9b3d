// Package pdf implementa a geração do relatório mensal do livro-caixa
// em PDF (A4) usando Maroto v2.
//
// Layout da página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + CNPJ  │  Período + data de geração       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Descrição | Categoria | Tipo | Valor        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Receitas / Despesas / SALDO DO MÊS                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ast7/gestao-api/internal/application/reports"
	"github.com/ast7/gestao-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 183, Green: 28, Blue: 28}
	colorGreen   = &props.Color{Red: 27, Green: 94, Blue: 32}
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

var _ reports.LedgerPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.LedgerPDFGenerator.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// MonthlyLedger gera o PDF do relatório e devolve seus bytes.
func (g *MarotoReportGenerator) MonthlyLedger(report *reports.LedgerReport) ([]byte, error) {
	companyName := "—"
	if report.Company != nil {
		companyName = report.Company.Name
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Financeiro Mensal", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, e := range report.Entries {
		m.AddRows(entryRow(e))
	}
	if len(report.Entries) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhum lançamento no período.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa + CNPJ (esq) e período + geração (dir).
func headerRow(report *reports.LedgerReport) core.Row {
	name, cnpj := "—", "—"
	if report.Company != nil {
		name = report.Company.Name
		if report.Company.CNPJ != "" {
			cnpj = report.Company.CNPJ
		}
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+cnpj, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("LIVRO-CAIXA MENSAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+report.Period, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Gerado em: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Descrição", 4, align.Left),
		h("Categoria", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Valor", 3, align.Right),
	)
}

func entryRow(e *entity.FinancialEntry) core.Row {
	valueColor := colorGreen
	if e.Type == entity.EntryTypeExpense {
		valueColor = colorRed
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(e.Date.Format("02/01/2006"), props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(e.Description, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(e.Category, props.Text{Size: 8, Top: 1, Color: colorGray})),
		col.New(1).Add(text.New(e.Type, props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorGray})),
		col.New(3).Add(text.New(formatBRL(e.Value), props.Text{
			Size: 8, Align: align.Right, Top: 1, Color: valueColor,
		})),
	)
}

func totalsRow(report *reports.LedgerReport) core.Row {
	balanceColor := colorGreen
	if report.Balance.IsNegative() {
		balanceColor = colorRed
	}
	label := func(s string, top float64, c *props.Color, bold bool) core.Component {
		st := fontstyle.Normal
		if bold {
			st = fontstyle.Bold
		}
		return text.New(s, props.Text{Style: st, Size: 9, Align: align.Right, Right: 2, Top: top, Color: c})
	}
	return row.New(24).Add(
		col.New(4),
		col.New(4).Add(
			label("Receitas do mês:", 2, nil, true),
			label("Despesas do mês:", 8, nil, true),
			label("SALDO DO MÊS:", 15, colorPrimary, true),
		),
		col.New(4).Add(
			label(formatBRL(report.TotalRevenue), 2, colorGreen, false),
			label(formatBRL(report.TotalExpense), 8, colorRed, false),
			label(formatBRL(report.Balance), 15, balanceColor, true),
		),
	)
}

// formatBRL formata o valor em reais com separadores pt-BR.
// Ex: 1234567.89 → "R$ 1.234.567,89"
func formatBRL(v decimal.Decimal) string {
	return ptBR.Sprintf("R$ %.2f", v.InexactFloat64())
}
