package config

import (
	"context"
	"database/sql"

	"todo-api/internal/auth"
	"todo-api/internal/repository"
	ws "todo-api/internal/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
)

var (
	// Global dependency yang akan digunakan di seluruh aplikasi
	DB          *sql.DB
	Validate    = validator.New()
	Ctx         = context.Background()
	RedisClient *redis.Client

	// Security core: token manager dan service register/login
	JWT  *auth.JWTManager
	Auth *auth.Service

	// Repositories
	Users    *repository.UserRepo
	Tasks    *repository.TaskRepo
	SubTasks *repository.SubTaskRepo
	TimeLogs *repository.TimeLogRepo

	// Hub event opsional; nil berarti tidak ada broadcast (mis. saat test)
	Hub *ws.Hub
)
