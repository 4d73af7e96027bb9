package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope respons mengikuti format {message, success, status, data?}.

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"success": false,
		"status":  status,
	})
}

func ok(c *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{
		"message": message,
		"success": true,
		"status":  status,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// identity mengambil id numerik pemanggil yang sudah divalidasi middleware.
func identity(c *fiber.Ctx) int {
	return c.Locals("userID").(int)
}
