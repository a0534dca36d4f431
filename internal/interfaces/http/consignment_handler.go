package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manishholla/logitrack-api/internal/application/consignment"
	"github.com/manishholla/logitrack-api/internal/application/dto"
	"github.com/manishholla/logitrack-api/internal/domain"
	"github.com/manishholla/logitrack-api/internal/domain/entity"
	"github.com/manishholla/logitrack-api/internal/domain/repository"
)

// ConsignmentHandler expone el ciclo de vida de envíos por HTTP.
type ConsignmentHandler struct {
	useCase *consignment.UseCase
}

func NewConsignmentHandler(useCase *consignment.UseCase) *ConsignmentHandler {
	return &ConsignmentHandler{useCase: useCase}
}

// Create registra un envío nuevo con número de tracking generado.
// POST /api/consignments
func (h *ConsignmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateConsignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	resp, err := h.useCase.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List lista envíos con filtros y paginación. Los usuarios sin vista
// global ven su propia bodega cuando no piden una explícita.
// GET /api/consignments
func (h *ConsignmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	filter := repository.ConsignmentFilter{
		WarehouseID: DefaultWarehouse(c, c.Query("warehouse_id")),
		Status:      entity.ConsignmentStatus(c.Query("status")),
	}
	resp, err := h.useCase.List(c.UserContext(), filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID busca un envío por su identificador.
// GET /api/consignments/:id
func (h *ConsignmentHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.useCase.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(resp)
}

// Track busca un envío por número de tracking. Endpoint público para
// que los destinatarios consulten sin autenticarse.
// GET /api/consignments/tracking/:code
func (h *ConsignmentHandler) Track(c *fiber.Ctx) error {
	resp, err := h.useCase.GetByTracking(c.UserContext(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(resp)
}

// UpdateStatus cambia el estado del envío y registra la transición en
// la bitácora dentro de la misma transacción.
// PUT /api/consignments/:id/status
func (h *ConsignmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	resp, err := h.useCase.UpdateStatus(c.UserContext(), c.Params("id"), req, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(resp)
}
