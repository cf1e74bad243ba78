package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/aimob/aimob-backend/internal/utils"
)

func AttachJWTLocals() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Locals("user")
		if raw == nil {
			return fiber.ErrUnauthorized
		}

		token, ok := raw.(*jwt.Token)
		if !ok || token == nil {
			return fiber.ErrUnauthorized
		}

		claims, ok := token.Claims.(*utils.Claims)
		if !ok {
			return fiber.ErrUnauthorized
		}

		if claims.UserID == 0 {
			return fiber.ErrUnauthorized
		}

		c.Locals("userId", claims.UserID)
		c.Locals("userHandle", claims.User)

		return c.Next()
	}
}

// UserID lê o id autenticado colocado nas locals pelo AttachJWTLocals.
func UserID(c *fiber.Ctx) uint {
	if v, ok := c.Locals("userId").(uint); ok {
		return v
	}
	return 0
}
