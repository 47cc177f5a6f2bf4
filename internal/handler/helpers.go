package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helper untuk ambil User Info dari JWT Context (set by auth middleware)
func actingUserID(c *fiber.Ctx) *uuid.UUID {
	v := c.Locals("user_id")
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(v.(string))
	if err != nil {
		return nil
	}
	return &id
}

// respondValidationError is the single validation-failure shape across all
// mutations: 422 dengan pesan per field.
func respondValidationError(c *fiber.Ctx, fieldErrs map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": "The given data was invalid.",
		"errors":  fieldErrs,
	})
}
