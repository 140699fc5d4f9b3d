package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/application/usecase"
)

// ExpenseCategoryHandler trata as requisições HTTP das categorias de despesa.
type ExpenseCategoryHandler struct {
	uc *usecase.ExpenseCategoryUseCase
}

// NewExpenseCategoryHandler constrói o handler.
func NewExpenseCategoryHandler(uc *usecase.ExpenseCategoryUseCase) *ExpenseCategoryHandler {
	return &ExpenseCategoryHandler{uc: uc}
}

// Create POST /api/expense-categories
func (h *ExpenseCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.ExpenseCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	cat, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// List GET /api/expense-categories
func (h *ExpenseCategoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/expense-categories/:id
func (h *ExpenseCategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.ExpenseCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	cat, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cat)
}

// Delete DELETE /api/expense-categories/:id
func (h *ExpenseCategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
