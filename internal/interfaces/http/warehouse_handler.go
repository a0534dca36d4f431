package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manishholla/logitrack-api/internal/application/dto"
	"github.com/manishholla/logitrack-api/internal/application/usecase"
	"github.com/manishholla/logitrack-api/internal/domain"
)

// WarehouseHandler gestión del catálogo de bodegas.
type WarehouseHandler struct {
	useCase *usecase.WarehouseUseCase
}

func NewWarehouseHandler(useCase *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{useCase: useCase}
}

// Create registra una bodega con identificador asignado por el operador.
// POST /api/warehouses
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateWarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	resp, err := h.useCase.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List lista bodegas activas.
// GET /api/warehouses
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	resp, err := h.useCase.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID busca una bodega por id.
// GET /api/warehouses/:id
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.useCase.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(resp)
}

// Update actualiza campos parciales de la bodega.
// PUT /api/warehouses/:id
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateWarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	resp, err := h.useCase.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(resp)
}

// Deactivate desactiva la bodega (borrado lógico).
// DELETE /api/warehouses/:id
func (h *WarehouseHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.useCase.Deactivate(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "bodega desactivada"})
}
