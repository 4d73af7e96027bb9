package v1

import (
	"todo-api/internal/api/v1/handlers"
	"todo-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Auth
	api.Post("/auth/register", handlers.Register)
	api.Post("/auth/login", handlers.Login)

	// Akun pemilik token
	api.Get("/me", middleware.UseToken, handlers.Me)

	// Task
	taskRoutes := api.Group("/tasks", middleware.UseToken)
	taskRoutes.Post("/", handlers.CreateTask)
	taskRoutes.Get("/", handlers.ListTasks)
	taskRoutes.Get("/:id", handlers.GetTask)
	taskRoutes.Put("/:id", handlers.UpdateTask)
	taskRoutes.Delete("/:id", handlers.DeleteTask)

	// Sub-task di bawah task
	taskRoutes.Post("/:id/subtasks", handlers.CreateSubTask)
	taskRoutes.Get("/:id/subtasks", handlers.ListSubTasks)

	// Time log di bawah task
	taskRoutes.Get("/:id/timelogs", handlers.ListTimeLogs)
	taskRoutes.Post("/:id/timelogs/start", handlers.StartTimeLog)
	taskRoutes.Post("/:id/timelogs/stop", handlers.StopTimeLog)

	// Sub-task berdiri sendiri (update/delete by id)
	subTaskRoutes := api.Group("/subtasks", middleware.UseToken)
	subTaskRoutes.Put("/:id", handlers.UpdateSubTask)
	subTaskRoutes.Delete("/:id", handlers.DeleteSubTask)
}
