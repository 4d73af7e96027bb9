package handlers

import (
	"errors"

	"todo-api/internal/config"
	"todo-api/internal/repository"
	"todo-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Me mengembalikan akun pemilik token yang sedang dipakai.
func Me(c *fiber.Ctx) error {
	userID := identity(c)

	user, err := config.Users.FindByID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, 404, "User not found")
		}
		logger.ErrorLogger.Error("Error fetching user", zap.Error(err))
		return fail(c, 500, "Error fetching user")
	}

	return ok(c, 200, "User found", user)
}
