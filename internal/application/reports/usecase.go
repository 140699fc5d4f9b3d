// Package reports gera o relatório mensal do livro-caixa em PDF.
package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ast7/gestao-api/internal/application/analytics"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

// LedgerReport são os dados consolidados entregues ao gerador de PDF.
type LedgerReport struct {
	Company      *entity.CompanyInfo
	Period       string // "YYYY-MM"
	Entries      []*entity.FinancialEntry
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	GeneratedAt  time.Time
}

// LedgerPDFGenerator renderiza o relatório em PDF.
type LedgerPDFGenerator interface {
	MonthlyLedger(report *LedgerReport) ([]byte, error)
}

// UseCase caso de uso de relatórios.
type UseCase struct {
	entryRepo   repository.FinancialEntryRepository
	companyRepo repository.CompanyInfoRepository
	generator   LedgerPDFGenerator
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	entryRepo repository.FinancialEntryRepository,
	companyRepo repository.CompanyInfoRepository,
	generator LedgerPDFGenerator,
) *UseCase {
	return &UseCase{entryRepo: entryRepo, companyRepo: companyRepo, generator: generator}
}

// MonthlyLedgerPDF gera o PDF do livro-caixa do período "YYYY-MM".
// Período vazio usa o mês atual.
func (uc *UseCase) MonthlyLedgerPDF(period string) ([]byte, error) {
	if period == "" {
		period = time.Now().Format(analytics.PeriodLayout)
	}
	if _, err := time.Parse(analytics.PeriodLayout, period); err != nil {
		return nil, fmt.Errorf("%w: período deve ser YYYY-MM", domain.ErrInvalidInput)
	}

	company, err := uc.companyRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("relatório: carregar empresa: %w", err)
	}
	all, err := uc.entryRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("relatório: listar lançamentos: %w", err)
	}

	var entries []*entity.FinancialEntry
	for _, e := range all {
		if !e.Date.IsZero() && e.Date.Format(analytics.PeriodLayout) == period {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })

	revenue := analytics.MonthlyTotal(all, entity.EntryTypeRevenue, period)
	expense := analytics.MonthlyTotal(all, entity.EntryTypeExpense, period)

	report := &LedgerReport{
		Company:      company,
		Period:       period,
		Entries:      entries,
		TotalRevenue: revenue,
		TotalExpense: expense,
		Balance:      revenue.Sub(expense),
		GeneratedAt:  time.Now(),
	}
	pdf, err := uc.generator.MonthlyLedger(report)
	if err != nil {
		return nil, fmt.Errorf("relatório: gerar PDF: %w", err)
	}
	return pdf, nil
}
