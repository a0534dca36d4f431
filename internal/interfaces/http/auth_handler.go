package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manishholla/logitrack-api/internal/application/auth"
	"github.com/manishholla/logitrack-api/internal/application/dto"
	"github.com/manishholla/logitrack-api/internal/domain"
)

// AuthHandler expone los endpoints de autenticación.
type AuthHandler struct {
	useCase *auth.UseCase
}

func NewAuthHandler(useCase *auth.UseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

// Login autentica con email y contraseña y devuelve un JWT.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	resp, err := h.useCase.Login(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Logout es un no-op del lado del servidor: el cliente descarta el
// token. Existe para que los clientes tengan un endpoint simétrico.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "sesión cerrada"})
}

// Me devuelve el usuario autenticado según el token.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.useCase.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return respondError(c, domain.ErrUserNotFound)
	}
	return c.JSON(user)
}
