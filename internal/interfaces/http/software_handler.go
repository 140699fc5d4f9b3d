package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/application/usecase"
)

// SoftwareHandler trata as requisições HTTP do catálogo de softwares.
type SoftwareHandler struct {
	uc *usecase.SoftwareUseCase
}

// NewSoftwareHandler constrói o handler.
func NewSoftwareHandler(uc *usecase.SoftwareUseCase) *SoftwareHandler {
	return &SoftwareHandler{uc: uc}
}

// Create POST /api/softwares
func (h *SoftwareHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSoftwareRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	sw, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sw)
}

// List GET /api/softwares
func (h *SoftwareHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/softwares/:id
func (h *SoftwareHandler) GetByID(c *fiber.Ctx) error {
	sw, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sw)
}

// Update PUT /api/softwares/:id
func (h *SoftwareHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSoftwareRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	sw, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sw)
}

// Delete DELETE /api/softwares/:id
func (h *SoftwareHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
