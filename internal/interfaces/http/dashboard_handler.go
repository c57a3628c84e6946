package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EzequielRindello/StockCore/internal/application/analytics"
	"github.com/EzequielRindello/StockCore/internal/application/dto"
)

// DashboardHandler expone los datos agregados del tablero y sus exportaciones.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetData devuelve todos los datos del tablero en una sola respuesta.
func (h *DashboardHandler) GetData(c *fiber.Ctx) error {
	out, err := h.uc.GetData(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportCsv descarga el resumen de métricas como CSV.
func (h *DashboardHandler) ExportCsv(c *fiber.Ctx) error {
	out, err := h.uc.ExportSummaryCsv(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendCsv(c, "dashboard-summary.csv", out)
}

// ExportPdf descarga el reporte del tablero en PDF.
func (h *DashboardHandler) ExportPdf(c *fiber.Ctx) error {
	out, err := h.uc.ExportPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendPdf(c, "dashboard-report.pdf", out)
}
