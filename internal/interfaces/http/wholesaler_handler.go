package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/application/usecase"
	"github.com/jhoicas/Farmalab-api/internal/domain"
)

// WholesalerHandler maneja el catálogo de mayoristas (protegido).
type WholesalerHandler struct {
	uc *usecase.WholesalerUseCase
}

// NewWholesalerHandler construye el handler.
func NewWholesalerHandler(uc *usecase.WholesalerUseCase) *WholesalerHandler {
	return &WholesalerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar mayorista
// @Tags         wholesalers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  usecase.CreateWholesalerRequest  true  "name, address"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/wholesalers [post]
func (h *WholesalerHandler) Create(c *fiber.Ctx) error {
	var in usecase.CreateWholesalerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	wholesaler, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el mayorista ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(wholesaler)
}

// List godoc
// @Summary      Listar mayoristas
// @Tags         wholesalers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  map[string]string
// @Router       /api/wholesalers [get]
func (h *WholesalerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
