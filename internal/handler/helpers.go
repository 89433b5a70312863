package handler

import (
	"errors"

	"go-stock-api/internal/service"
	"go-stock-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// authUserID returns the authenticated user's id set by the auth middleware.
func authUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals("user_id").(uuid.UUID)
	return id
}

// mapError translates service errors to the HTTP contract: field errors are
// a 400 with the field→message map, scoped lookup misses are a 404.
func mapError(c *fiber.Ctx, err error) error {
	var fieldErrs validator.FieldErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(400).JSON(fieldErrs)
	}
	if errors.Is(err, service.ErrNotFound) {
		return c.SendStatus(404)
	}
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}
