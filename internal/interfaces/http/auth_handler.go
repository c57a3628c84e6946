package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/application/usecase"
)

// AuthHandler maneja login, logout y el usuario autenticado.
type AuthHandler struct {
	uc         *usecase.AuthUseCase
	cookieName string
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *usecase.AuthUseCase, cookieName string) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName}
}

// Login verifica credenciales y deja el token de sesión en una cookie
// HTTP-only. Las fallas responden 401 con el mismo AuthResult que vería la UI.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, token := h.uc.Login(in)
	if !res.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(res)
	}
	c.Cookie(sessionCookie(h.cookieName, token))
	return c.JSON(res)
}

// Logout destruye la sesión y limpia la cookie. Sin sesión es un no-op.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(c.Cookies(h.cookieName))
	clearSessionCookie(c, h.cookieName)
	return c.JSON(dto.Ok("Logout successful"))
}

// Me devuelve el usuario autenticado, o 401 si la sesión no resuelve.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.CurrentUser(c.Cookies(h.cookieName))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: dto.MsgLoginRequired})
	}
	return c.JSON(user)
}
