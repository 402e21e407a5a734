package middleware

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"smart-hostel/service"
)

// Authorize lets the request through only when the policy allows the caller to perform action.
func Authorize(policy *service.Policy, action service.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var caller *service.Caller
		if claims := ClaimsFrom(c); claims != nil {
			caller = &service.Caller{UserID: claims.UserID, Role: claims.Role}
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		err := policy.Authorize(ctx, caller, action)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, service.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": service.Message(err, "Unauthorized")})
		case errors.Is(err, service.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"msg": service.Message(err, "Forbidden")})
		}
		log.Printf("Error authorizing %s: %v", action, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Error checking access", "error": err.Error()})
	}
}
