package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ast7/gestao-api/internal/application/analytics"
	"github.com/ast7/gestao-api/internal/application/reports"
)

// ReportHandler trata as requisições HTTP de relatórios em PDF.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// MonthlyLedger GET /api/reports/ledger?period=YYYY-MM
//
// Devolve o PDF do livro-caixa do período. Sem período, usa o mês atual.
func (h *ReportHandler) MonthlyLedger(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		period = time.Now().Format(analytics.PeriodLayout)
	}
	pdf, err := h.uc.MonthlyLedgerPDF(period)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="livro-caixa-%s.pdf"`, period))
	return c.Send(pdf)
}
