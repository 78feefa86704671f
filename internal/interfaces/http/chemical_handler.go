package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/application/inventory"
	"github.com/jhoicas/Farmalab-api/internal/application/usecase"
	"github.com/jhoicas/Farmalab-api/internal/domain"
)

// ChemicalHandler maneja el catálogo de químicos y su existencia (protegido).
type ChemicalHandler struct {
	uc    *usecase.ChemicalUseCase
	stock *inventory.StockUseCase
}

// NewChemicalHandler construye el handler.
func NewChemicalHandler(uc *usecase.ChemicalUseCase, stock *inventory.StockUseCase) *ChemicalHandler {
	return &ChemicalHandler{uc: uc, stock: stock}
}

// Create godoc
// @Summary      Registrar químico (materia prima)
// @Tags         chemicals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChemicalRequest  true  "name"
// @Success      201   {object}  dto.ChemicalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/chemicals [post]
func (h *ChemicalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChemicalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el químico ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar químicos con existencia
// @Tags         chemicals
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.ChemicalResponse
// @Router       /api/chemicals [get]
func (h *ChemicalHandler) List(c *fiber.Ctx) error {
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

// GetByID godoc
// @Summary      Detalle de un químico
// @Tags         chemicals
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del químico"
// @Success      200  {object}  dto.ChemicalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chemicals/{id} [get]
func (h *ChemicalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "químico no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Existencia actual de un químico en kg
// @Tags         chemicals
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del químico"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chemicals/{id}/stock [get]
func (h *ChemicalHandler) GetStock(c *fiber.Ctx) error {
	qty, err := h.stock.Available(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "químico no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"chemical_id": c.Params("id"), "quantity_kg": qty})
}
