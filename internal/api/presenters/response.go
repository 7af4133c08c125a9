package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse writes {"error": message}. Causes are logged by the caller
// and never sent to the client.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int) error {
	return c.Status(statusCode).JSON(data)
}
