package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"smart-hostel/service"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrAlreadyCompleted):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrExpired):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrTooEarly):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// respondError writes err as a JSON error body. Unexpected errors become a 500
// carrying fallback as the message.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s: %v", fallback, err)
		return c.Status(status).JSON(fiber.Map{"msg": fallback, "error": err.Error()})
	}

	body := fiber.Map{"msg": service.Message(err, fallback)}
	var svcErr *service.Error
	if errors.As(err, &svcErr) && len(svcErr.Fields) > 0 {
		body["errors"] = svcErr.Fields
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler is the Fiber fallback for errors returned by handlers and middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		msg = fiberErr.Message
	} else {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"msg": msg})
}
