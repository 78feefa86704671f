package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/application/reports"
)

// ReportHandler expone los reportes de solo lectura del negocio (protegido).
type ReportHandler struct {
	uc *reports.ReportsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportsUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockSnapshot godoc
// @Summary      Snapshot de existencias de materia prima
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockSnapshotDTO
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockSnapshot(c *fiber.Ctx) error {
	out, err := h.uc.StockSnapshot(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PurchaseHistory godoc
// @Summary      Historial de compras
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.PurchaseHistoryDTO
// @Router       /api/reports/purchases [get]
func (h *ReportHandler) PurchaseHistory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.uc.PurchaseHistory(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesHistory godoc
// @Summary      Historial de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.SalesHistoryDTO
// @Router       /api/reports/sales [get]
func (h *ReportHandler) SalesHistory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.uc.SalesHistory(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Surplus godoc
// @Summary      Químicos con excedente
// @Description  Más de 100 kg en stock y sin uso en la fórmula de ningún
//
//	medicamento producido en los últimos 6 meses.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SurplusChemicalDTO
// @Router       /api/reports/surplus [get]
func (h *ReportHandler) Surplus(c *fiber.Ctx) error {
	out, err := h.uc.Surplus(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProfitDashboard godoc
// @Summary      Rentabilidad proyectada por medicamento
// @Description  Costo de materia prima, precio con margen 60% y EBITDA 18%.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProfitDashboardDTO
// @Router       /api/reports/profit [get]
func (h *ReportHandler) ProfitDashboard(c *fiber.Ctx) error {
	out, err := h.uc.ProfitDashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
