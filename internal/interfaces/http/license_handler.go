package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/application/licensing"
)

// LicenseHandler trata as requisições HTTP de licenças de software.
type LicenseHandler struct {
	uc *licensing.LicenseUseCase
}

// NewLicenseHandler constrói o handler.
func NewLicenseHandler(uc *licensing.LicenseUseCase) *LicenseHandler {
	return &LicenseHandler{uc: uc}
}

// Sell POST /api/clients/:id/licenses
//
// Registra a venda e lança a receita correspondente na mesma transação.
func (h *LicenseHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	lic, err := h.uc.Sell(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lic)
}

// ListByClient GET /api/clients/:id/licenses
func (h *LicenseHandler) ListByClient(c *fiber.Ctx) error {
	list, err := h.uc.ListByClient(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/licenses/:id
func (h *LicenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	lic, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lic)
}

// Return POST /api/licenses/:id/return
func (h *LicenseHandler) Return(c *fiber.Ctx) error {
	lic, err := h.uc.Return(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lic)
}

// Delete DELETE /api/licenses/:id
func (h *LicenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
