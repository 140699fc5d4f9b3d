package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/application/occurrence"
)

// OccurrenceHandler trata as requisições HTTP de ocorrências de suporte.
type OccurrenceHandler struct {
	uc *occurrence.UseCase
}

// NewOccurrenceHandler constrói o handler.
func NewOccurrenceHandler(uc *occurrence.UseCase) *OccurrenceHandler {
	return &OccurrenceHandler{uc: uc}
}

// Create POST /api/occurrences
func (h *OccurrenceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOccurrenceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	occ, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(occ)
}

// List GET /api/occurrences?limit=20&offset=0
func (h *OccurrenceHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/occurrences/:id
func (h *OccurrenceHandler) GetByID(c *fiber.Ctx) error {
	occ, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(occ)
}

// Update PUT /api/occurrences/:id
//
// Quando a atualização muda o status para resolvida, o usuário do token
// é registrado como quem encerrou o chamado.
func (h *OccurrenceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOccurrenceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	occ, err := h.uc.Update(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(occ)
}

// Delete DELETE /api/occurrences/:id
func (h *OccurrenceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
