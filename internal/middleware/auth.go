package middleware

import (
	"todo-api/internal/auth"
	"todo-api/internal/config"
	"todo-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UseToken memvalidasi bearer token sekali di edge lalu menaruh identitas
// numerik pemanggil di locals untuk semua pemeriksaan ownership berikutnya.
// Semua kegagalan validasi dijawab seragam tanpa membocorkan pemeriksaan
// mana yang gagal.
func UseToken(c *fiber.Ctx) error {
	tokenText, ok := auth.NormalizeBearer(c.Get("Authorization"))
	if !ok {
		// Tidak ada kredensial: endpoint ini butuh identitas, jadi tolak di sini
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "No token provided",
			"success": false,
			"status":  fiber.StatusUnauthorized,
		})
	}

	claims, err := config.JWT.Validate(tokenText)
	if err != nil {
		logger.SecurityLogger.Warn("Token rejected", zap.String("path", c.Path()))
		return unauthenticated(c)
	}

	userID, err := auth.ExtractIdentity(claims)
	if err != nil {
		logger.SecurityLogger.Warn("Token has no usable identity claim", zap.String("path", c.Path()))
		return unauthenticated(c)
	}

	c.Locals("userID", userID)
	c.Locals("username", claims.Username)
	return c.Next()
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Invalid or expired token",
		"success": false,
		"status":  fiber.StatusUnauthorized,
	})
}
