package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/application/usecase"
)

// CompanyHandler trata as requisições HTTP dos dados da empresa.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler constrói o handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Get GET /api/company
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	info, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(info)
}

// Update PUT /api/company (restrito a admin)
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.CompanyInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	info, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(info)
}
