package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/application/ledger"
)

// FinancialHandler trata as requisições HTTP do livro-caixa.
type FinancialHandler struct {
	uc *ledger.UseCase
}

// NewFinancialHandler constrói o handler.
func NewFinancialHandler(uc *ledger.UseCase) *FinancialHandler {
	return &FinancialHandler{uc: uc}
}

// Create POST /api/financial-entries
func (h *FinancialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFinancialEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	entry, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List GET /api/financial-entries?limit=20&offset=0
func (h *FinancialHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/financial-entries/:id
func (h *FinancialHandler) GetByID(c *fiber.Ctx) error {
	entry, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// Update PUT /api/financial-entries/:id
func (h *FinancialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFinancialEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	entry, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// Delete DELETE /api/financial-entries/:id
func (h *FinancialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
