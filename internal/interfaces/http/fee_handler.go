package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/application/usecase"
)

// FeeHandler trata as requisições HTTP de mensalidades de clientes.
type FeeHandler struct {
	uc *usecase.MonthlyFeeUseCase
}

// NewFeeHandler constrói o handler.
func NewFeeHandler(uc *usecase.MonthlyFeeUseCase) *FeeHandler {
	return &FeeHandler{uc: uc}
}

// Create POST /api/clients/:id/fees
func (h *FeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMonthlyFeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	fee, err := h.uc.Create(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fee)
}

// ListByClient GET /api/clients/:id/fees
func (h *FeeHandler) ListByClient(c *fiber.Ctx) error {
	list, err := h.uc.ListByClient(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/fees/:id
func (h *FeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMonthlyFeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	fee, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fee)
}

// Delete DELETE /api/fees/:id
func (h *FeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
