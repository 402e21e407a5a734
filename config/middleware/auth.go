package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"smart-hostel/pkg/token"
)

// AuthMiddleware verifies the bearer token and stores its claims under "user".
func AuthMiddleware(verifier token.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Authorization header is required"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && strings.EqualFold(parts[0], "Bearer")) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Authorization header format must be Bearer <token>"})
		}

		claims, err := verifier.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Invalid or expired token", "error": err.Error()})
		}

		c.Locals("user", claims)

		return c.Next()
	}
}

// ClaimsFrom returns the claims stored by AuthMiddleware, or nil.
func ClaimsFrom(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals("user").(*token.Claims)
	return claims
}
