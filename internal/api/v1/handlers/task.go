package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"todo-api/internal/config"
	"todo-api/internal/models"
	"todo-api/internal/repository"
	"todo-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Task handlers

// Batas bawah due date, tanggal sebelum ini dianggap salah input.
var minDueDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func validStatus(status string) bool {
	switch status {
	case "todo", "in_progress", "done":
		return true
	default:
		return false
	}
}

func validPriority(priority string) bool {
	switch priority {
	case "low", "medium", "high":
		return true
	default:
		return false
	}
}

// TaskRequest dipakai create dan update (PUT mengganti seluruh field).
type TaskRequest struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description string     `json:"description" validate:"max=2000"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

func (req *TaskRequest) normalize() string {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" {
		return "Title is required"
	}
	if len(req.Title) > 100 {
		return "Title must be 100 characters or fewer"
	}
	if req.Status == "" {
		req.Status = "todo"
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}
	if req.DueDate != nil && req.DueDate.Before(minDueDate) {
		return "Due date cannot be earlier than 2000-01-01"
	}
	return ""
}

func taskCacheKey(taskID, userID int) string {
	// Key di-scope per pemilik supaya cache tidak membocorkan task user lain
	return fmt.Sprintf("task:%d:user:%d", taskID, userID)
}

func cacheTask(task *models.Task) {
	if config.RedisClient == nil {
		return
	}
	data, err := json.Marshal(task)
	if err != nil {
		return
	}
	config.RedisClient.SetEX(config.Ctx, taskCacheKey(task.ID, task.UserID), data, time.Hour)
}

func dropCachedTask(taskID, userID int) {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(config.Ctx, taskCacheKey(taskID, userID))
}

func CreateTask(c *fiber.Ctx) error {
	userID := identity(c)

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return fail(c, 400, "Bad request")
	}
	if msg := req.normalize(); msg != "" {
		return fail(c, 400, msg)
	}
	if err := config.Validate.Struct(req); err != nil {
		logger.ErrorLogger.Error("Validation error in create task", zap.Error(err))
		return fail(c, 400, "Validation error")
	}

	task := models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}

	taskID, err := config.Tasks.Create(c.UserContext(), &task)
	if err != nil {
		logger.ErrorLogger.Error("Error creating task", zap.Error(err))
		return fail(c, 500, "Error creating task")
	}
	task.ID = taskID

	if config.Hub != nil {
		config.Hub.Publish("task.created", task)
	}

	logger.AuditLogger.Info("Task created successfully", zap.Int("task_id", taskID))
	return ok(c, 201, "Task created successfully", fiber.Map{"id": taskID})
}

func ListTasks(c *fiber.Ctx) error {
	userID := identity(c)

	filter := repository.TaskFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Query:    strings.TrimSpace(c.Query("q")),
		Sort:     strings.ToLower(c.Query("sort")),
	}

	if filter.Status != "" && !validStatus(filter.Status) {
		return fail(c, 400, "Invalid status. Allowed values: todo, in_progress, done")
	}
	if filter.Priority != "" && !validPriority(filter.Priority) {
		return fail(c, 400, "Invalid priority. Allowed values: low, medium, high")
	}
	if filter.Sort != "" && filter.Sort != "duedate" && filter.Sort != "createdat" {
		return fail(c, 400, "Invalid sort. Allowed values: duedate, createdat")
	}

	tasks, err := config.Tasks.List(c.UserContext(), userID, filter)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching tasks", zap.Error(err))
		return fail(c, 500, "Error fetching tasks")
	}

	return ok(c, 200, "Tasks fetched successfully", tasks)
}

func GetTask(c *fiber.Ctx) error {
	userID := identity(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, 400, "Invalid task ID")
	}

	// Coba cache Redis dulu; cache miss atau Redis mati jatuh ke database
	if config.RedisClient != nil {
		if cached, err := config.RedisClient.Get(config.Ctx, taskCacheKey(taskID, userID)).Result(); err == nil {
			var task models.Task
			if err := json.Unmarshal([]byte(cached), &task); err == nil {
				logger.AuditLogger.Info("Task found (from cache)", zap.Int("task_id", taskID))
				return ok(c, 200, "Task found", task)
			}
		}
	}

	task, err := config.Tasks.GetByID(c.UserContext(), taskID, userID)
	if err != nil {
		// Task tidak ada dan task milik akun lain dijawab sama persis
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, 404, "Task not found")
		}
		logger.ErrorLogger.Error("Error fetching task", zap.Error(err))
		return fail(c, 500, "Error fetching task")
	}

	cacheTask(task)

	return ok(c, 200, "Task found", task)
}

func UpdateTask(c *fiber.Ctx) error {
	userID := identity(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, 400, "Invalid task ID")
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update task", zap.Error(err))
		return fail(c, 400, "Bad request")
	}
	if msg := req.normalize(); msg != "" {
		return fail(c, 400, msg)
	}
	if err := config.Validate.Struct(req); err != nil {
		logger.ErrorLogger.Error("Validation error in update task", zap.Error(err))
		return fail(c, 400, "Validation error")
	}

	task := models.Task{
		ID:          taskID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}

	if err := config.Tasks.Update(c.UserContext(), &task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, 404, "Task not found")
		}
		logger.ErrorLogger.Error("Error updating task", zap.Error(err))
		return fail(c, 500, "Error updating task")
	}

	dropCachedTask(taskID, userID)

	updated, err := config.Tasks.GetByID(c.UserContext(), taskID, userID)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching updated task", zap.Error(err))
		return fail(c, 500, "Error fetching updated task")
	}
	cacheTask(updated)

	if config.Hub != nil {
		config.Hub.Publish("task.updated", updated)
	}

	logger.AuditLogger.Info("Task updated", zap.Int("task_id", taskID))
	return ok(c, 200, "Task updated successfully", updated)
}

func DeleteTask(c *fiber.Ctx) error {
	userID := identity(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, 400, "Invalid task ID")
	}

	if err := config.Tasks.Delete(c.UserContext(), taskID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, 404, "Task not found")
		}
		logger.ErrorLogger.Error("Error deleting task", zap.Error(err))
		return fail(c, 500, "Error deleting task")
	}

	dropCachedTask(taskID, userID)

	if config.Hub != nil {
		config.Hub.Publish("task.deleted", fiber.Map{"id": taskID})
	}

	logger.AuditLogger.Info("Task deleted", zap.Int("task_id", taskID))
	return ok(c, 200, "Task deleted successfully", nil)
}
