package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resposta de GET /api/dashboard/summary.
// KPIs do período selecionado mais as séries dos gráficos.
type DashboardSummaryDTO struct {
	Period string `json:"period"` // "YYYY-MM"

	// KPIs do período
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`
	MonthlyExpense  decimal.Decimal `json:"monthly_expense"`
	NewClients      int             `json:"new_clients"`
	OpenOccurrences int             `json:"open_occurrences"`
	OverdueCount    int             `json:"overdue_occurrences"`

	// Vendas por software no período (exclui licenças devolvidas)
	SalesBySoftware []SoftwareSalesDTO `json:"sales_by_software"`

	// Receita vs despesa dos últimos 6 meses (do mais antigo ao atual)
	Series []MonthSeriesDTO `json:"series"`
}

// SoftwareSalesDTO ponto do gráfico de vendas por software.
type SoftwareSalesDTO struct {
	Name  string `json:"name"`
	Count int    `json:"value"`
}

// MonthSeriesDTO ponto da série mensal receita vs despesa.
type MonthSeriesDTO struct {
	Month   string          `json:"month"`  // rótulo pt-BR, ex: "jan"
	Period  string          `json:"period"` // "YYYY-MM"
	Revenue decimal.Decimal `json:"receita"`
	Expense decimal.Decimal `json:"despesa"`
}
