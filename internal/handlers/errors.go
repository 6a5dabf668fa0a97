package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"artprints/internal/services"
)

// respondServiceError maps service error kinds onto HTTP responses: missing
// references report 404, validation and persistence failures report 400,
// anything unrecognized reports 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": notFound.Reason,
		})
	}

	var invalid *services.ValidationError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": invalid.Reason,
		})
	}

	var persistence *services.PersistenceError
	if errors.As(err, &persistence) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": persistence.Reason,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": err.Error(),
	})
}
