package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ast7/gestao-api/internal/application/analytics"
)

// DashboardHandler trata as requisições HTTP do dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard/summary?period=YYYY-MM
//
// Sem período, usa o mês atual.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
