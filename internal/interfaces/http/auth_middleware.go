package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/domain"
)

// LocalUserID key del user id autenticado en c.Locals.
const LocalUserID = "user_id"

// ActiveUserResolver resuelve el token de sesión al usuario autenticado,
// re-verificando en cada request que siga existiendo y activo.
type ActiveUserResolver interface {
	ResolveActiveUser(token string) (userID string, err error)
}

// RequireActiveUser exige una sesión viva de un usuario activo. Un usuario
// desactivado pierde la sesión en su próximo request: el resolver la destruye
// y aquí se limpia la cookie.
func RequireActiveUser(resolver ActiveUserResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: dto.MsgLoginRequired,
			})
		}
		userID, err := resolver.ResolveActiveUser(token)
		switch {
		case err == nil:
			c.Locals(LocalUserID, userID)
			return c.Next()
		case errors.Is(err, domain.ErrForbidden):
			clearSessionCookie(c, cookieName)
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: dto.MsgAccountInactive,
			})
		case errors.Is(err, domain.ErrUnauthorized):
			clearSessionCookie(c, cookieName)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: dto.MsgLoginRequired,
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "INTERNAL", Message: err.Error(),
			})
		}
	}
}

// OptionalActiveUser resuelve la sesión si viene cookie, sin rechazar el
// request cuando no hay. Las vistas públicas que muestran estado de sesión
// (el índice de usuarios) la usan para saber quién navega.
func OptionalActiveUser(resolver ActiveUserResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(cookieName); token != "" {
			if userID, err := resolver.ResolveActiveUser(token); err == nil {
				c.Locals(LocalUserID, userID)
			} else if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrUnauthorized) {
				clearSessionCookie(c, cookieName)
			}
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// sessionCookie arma la cookie HTTP-only de sesión. El vencimiento real lo
// maneja el servidor (ventana deslizante); la cookie dura mientras dure el
// navegador.
func sessionCookie(name, token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	}
}

func clearSessionCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  time.Unix(0, 0),
	})
}
