package main

import (
	"fmt"
	"log"
	"time"

	"todo-api/configs"
	v1 "todo-api/internal/api/v1"
	"todo-api/internal/auth"
	"todo-api/internal/config"
	"todo-api/internal/middleware"
	"todo-api/internal/repository"
	myws "todo-api/internal/websocket"
	"todo-api/pkg/database"
	"todo-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

func main() {
	// Inisialisasi logger
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	// Load config
	cfg := configs.LoadConfig()

	// Secret yang kosong adalah error deployment fatal, bukan error per-request
	jwtManager, err := auth.NewJWTManager(auth.JWTConfig{
		Secret:        cfg.JWTSecret,
		Issuer:        cfg.JWTIssuer,
		Audience:      cfg.JWTAudience,
		ExpiryMinutes: cfg.JWTExpiryMinutes,
	})
	if err != nil {
		log.Fatalf("JWT configuration error: %v", err)
	}
	config.JWT = jwtManager

	// Inisialisasi database
	config.DB = database.ConnectDB(cfg)
	defer config.DB.Close()
	logger.SystemLogger.Info("Database Connected")

	// Buat tabel jika belum ada
	repository.CreateTableIfNotExists(config.DB)

	// Repositories + auth service
	config.Users = repository.NewUserRepo(config.DB)
	config.Tasks = repository.NewTaskRepo(config.DB)
	config.SubTasks = repository.NewSubTaskRepo(config.DB)
	config.TimeLogs = repository.NewTimeLogRepo(config.DB)
	config.Auth = auth.NewService(config.Users, config.JWT)

	// Inisialisasi Redis
	config.RedisClient = database.ConnectRedis(cfg)
	defer config.RedisClient.Close()

	app := fiber.New()

	// Middleware
	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	// Daftarkan route API v1
	v1.RegisterRoutes(app)

	// Hub WebSocket untuk event task/time log
	hub := myws.NewHub()
	go hub.Run()
	config.Hub = hub
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		client := &myws.Client{Conn: c}
		hub.Register <- client
		defer func() {
			hub.Unregister <- client
		}()
		for {
			// Klien hanya subscribe; baca sampai koneksi ditutup
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	addr := fmt.Sprintf(":%d", cfg.AppPort)
	logger.SystemLogger.Info("Application ready", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
