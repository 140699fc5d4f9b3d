package analytics

import (
	"fmt"
	"time"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

// DashboardUseCase monta o resumo do dashboard para um período.
type DashboardUseCase struct {
	clientRepo repository.ClientRepository
	entryRepo  repository.FinancialEntryRepository
	occRepo    repository.OccurrenceRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	clientRepo repository.ClientRepository,
	entryRepo repository.FinancialEntryRepository,
	occRepo repository.OccurrenceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{clientRepo: clientRepo, entryRepo: entryRepo, occRepo: occRepo}
}

// GetSummary devolve os KPIs e as séries para o período "YYYY-MM".
// Período vazio usa o mês atual.
func (uc *DashboardUseCase) GetSummary(period string) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	if period == "" {
		period = now.Format(PeriodLayout)
	}
	if _, err := time.Parse(PeriodLayout, period); err != nil {
		return nil, fmt.Errorf("%w: período deve ser YYYY-MM", domain.ErrInvalidInput)
	}

	clients, err := uc.clientRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar clientes: %w", err)
	}
	entries, err := uc.entryRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar lançamentos: %w", err)
	}
	occs, err := uc.occRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar ocorrências: %w", err)
	}

	return &dto.DashboardSummaryDTO{
		Period:          period,
		MonthlyRevenue:  MonthlyTotal(entries, entity.EntryTypeRevenue, period),
		MonthlyExpense:  MonthlyTotal(entries, entity.EntryTypeExpense, period),
		NewClients:      NewClientsInPeriod(clients, period),
		OpenOccurrences: OpenOccurrences(occs),
		OverdueCount:    OverdueOccurrences(occs, now),
		SalesBySoftware: SalesBySoftware(clients, period),
		Series:          TrailingSeries(entries, now, 6),
	}, nil
}
