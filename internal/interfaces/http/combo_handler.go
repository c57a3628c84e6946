package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/application/usecase"
)

// ComboHandler sirve las listas value/text que consumen los selects del front.
type ComboHandler struct {
	uc *usecase.ComboUseCase
}

// NewComboHandler construye el handler.
func NewComboHandler(uc *usecase.ComboUseCase) *ComboHandler {
	return &ComboHandler{uc: uc}
}

// Categories devuelve todas las categorías ordenadas por nombre.
func (h *ComboHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Products devuelve los productos activos con etiqueta "Nombre (SKU)".
func (h *ComboHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.Products()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
