package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manishholla/logitrack-api/internal/application/dto"
	"github.com/manishholla/logitrack-api/internal/application/usecase"
	"github.com/manishholla/logitrack-api/internal/domain"
	"github.com/manishholla/logitrack-api/internal/domain/repository"
)

// UserHandler gestión de usuarios, solo para administradores.
type UserHandler struct {
	useCase *usecase.UserUseCase
}

func NewUserHandler(useCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

// Create registra un usuario nuevo.
// POST /api/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	resp, err := h.useCase.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List lista usuarios con filtros opcionales de bodega y rol.
// GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	filter := repository.UserFilter{
		WarehouseID: c.Query("warehouse_id"),
		Role:        c.Query("role"),
	}
	resp, err := h.useCase.List(c.UserContext(), filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID busca un usuario por id.
// GET /api/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.useCase.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return respondError(c, domain.ErrUserNotFound)
	}
	return c.JSON(resp)
}

// Update actualiza campos parciales del usuario.
// PUT /api/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	resp, err := h.useCase.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return respondError(c, domain.ErrUserNotFound)
	}
	return c.JSON(resp)
}

// Deactivate desactiva la cuenta (borrado lógico).
// DELETE /api/users/:id
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	resp, err := h.useCase.Deactivate(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return respondError(c, domain.ErrUserNotFound)
	}
	return c.JSON(resp)
}
