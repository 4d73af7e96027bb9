package handlers

import (
	"errors"

	"todo-api/internal/auth"
	"todo-api/internal/config"
	"todo-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Auth handlers

func Register(c *fiber.Ctx) error {
	// struct RegisterRequest menerima inputan dari user
	type RegisterRequest struct {
		Username string `json:"username" validate:"required,max=50,excludesall=@?"`
		Password string `json:"password" validate:"required,min=6"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in register", zap.Error(err))
		return fail(c, 400, "Bad request")
	}

	// Validasi dengan validator
	if err := config.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during register", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	token, err := config.Auth.Register(c.UserContext(), req.Username, req.Password)
	if err != nil {
		// Username sudah ada (perbandingan case-insensitive, dijaga index unik)
		if errors.Is(err, auth.ErrDuplicateUsername) {
			logger.SecurityLogger.Warn("Duplicate username", zap.String("username", req.Username))
			return fail(c, 409, "Username already exists")
		}
		logger.ErrorLogger.Error("Error creating user", zap.Error(err))
		return fail(c, 500, "Error creating user")
	}

	logger.AuditLogger.Info("User registered successfully", zap.String("username", req.Username))
	return ok(c, 201, "User created successfully", fiber.Map{
		"token": token,
	})
}

func Login(c *fiber.Ctx) error {
	// struct LoginRequest menerima inputan dari user
	type LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in login", zap.Error(err))
		return fail(c, 400, "Bad request")
	}

	if err := config.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during login", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	token, err := config.Auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		// User tidak ada dan password salah dijawab sama persis
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logger.SecurityLogger.Warn("Invalid credentials", zap.String("username", req.Username))
			return fail(c, 401, "Invalid credentials")
		}
		logger.ErrorLogger.Error("Error during login", zap.Error(err))
		return fail(c, 500, "Error during login")
	}

	logger.AuditLogger.Info("Login success", zap.String("username", req.Username))
	return ok(c, 200, "Login success", fiber.Map{
		"token": token,
	})
}
