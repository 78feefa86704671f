package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/application/production"
	"github.com/jhoicas/Farmalab-api/internal/domain"
)

// ProductionHandler maneja corridas de producción y su bitácora (protegido).
type ProductionHandler struct {
	produce *production.ProduceUseCase
	history *production.HistoryUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(produce *production.ProduceUseCase, history *production.HistoryUseCase) *ProductionHandler {
	return &ProductionHandler{produce: produce, history: history}
}

// Produce godoc
// @Summary      Producir medicamento
// @Description  Valida existencias de todos los componentes, descuenta la
//
//	materia prima, calcula el costo unitario con el precio promedio
//	de compra y abona el producto terminado. Todo o nada: si un solo
//	componente falta, ningún stock cambia.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProduceRequest  true  "medicine_id, quantity (unidades; 1000 unidades = 1 kg)"
// @Success      201   {object}  dto.ProduceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *ProductionHandler) Produce(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ProduceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.produce.Produce(c.Context(), userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "medicine_id y quantity > 0 son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "materia prima insuficiente"})
		}
		if err == domain.ErrNoPurchaseHistory {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_PURCHASE_HISTORY", Message: "algún componente no tiene compras registradas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Bitácora de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.ProductionRecordDTO
// @Router       /api/production [get]
func (h *ProductionHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.history.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
