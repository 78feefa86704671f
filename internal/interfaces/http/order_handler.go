package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/application/sales"
	"github.com/jhoicas/Farmalab-api/internal/domain"
)

// OrderHandler maneja pedidos de mayoristas: creación, transición de estado
// y remisión de despacho (protegido).
type OrderHandler struct {
	create       *sales.CreateOrderUseCase
	transition   *sales.TransitionOrderUseCase
	deliveryNote *sales.DeliveryNoteUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(
	create *sales.CreateOrderUseCase,
	transition *sales.TransitionOrderUseCase,
	deliveryNote *sales.DeliveryNoteUseCase,
) *OrderHandler {
	return &OrderHandler{create: create, transition: transition, deliveryNote: deliveryNote}
}

// Create godoc
// @Summary      Crear pedido de venta
// @Description  Fija el precio de cada línea a partir del último costo de
//
//	producción del medicamento (costo / 0.40). El pedido nace en pending
//	y no toca inventario hasta el despacho.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "wholesaler_id, lines"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.create.CreateOrder(c.Context(), userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "wholesaler_id y al menos una línea con quantity > 0"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mayorista o medicamento no encontrado, o medicamento nunca producido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Transition godoc
// @Summary      Transicionar estado del pedido
// @Description  pending→shipped despacha y descuenta el producto terminado;
//
//	pending→cancelled cierra sin tocar inventario. Reintentar un despacho
//	ya aplicado es un no-op.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.TransitionOrderRequest  true  "status: shipped o cancelled"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/transition [post]
func (h *OrderHandler) Transition(c *fiber.Ctx) error {
	var in dto.TransitionOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.transition.Transition(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
		}
		if err == domain.ErrInvalidTransition {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "estado actualizado", "status": in.Status})
}

// DeliveryNote godoc
// @Summary      Remisión de despacho en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/delivery-note [get]
func (h *OrderHandler) DeliveryNote(c *fiber.Ctx) error {
	pdfBytes, err := h.deliveryNote.Generate(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="remision-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
