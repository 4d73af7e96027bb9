package handlers

import (
	"errors"
	"strings"

	"todo-api/internal/config"
	"todo-api/internal/models"
	"todo-api/internal/repository"
	"todo-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SubTask handlers. Ownership ke akun bersifat transitif: setiap operasi
// memeriksa dulu bahwa parent task milik pemanggil. Parent milik akun lain
// dijawab persis seperti sub-task yang tidak ada.

type SubTaskRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	IsCompleted bool   `json:"is_completed"`
}

func (req *SubTaskRequest) normalize() string {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return "Title is required"
	}
	if len(req.Title) > 100 {
		return "Title must be 100 characters or fewer"
	}
	return ""
}

// guardTask memastikan task ada dan milik pemanggil sebelum menyentuh
// resource di bawahnya.
func guardTask(c *fiber.Ctx, taskID, userID int) (bool, error) {
	exists, err := config.Tasks.Exists(c.UserContext(), taskID, userID)
	if err != nil {
		logger.ErrorLogger.Error("Error checking task ownership", zap.Error(err))
		return false, fail(c, 500, "Error fetching task")
	}
	if !exists {
		return false, fail(c, 404, "Task not found")
	}
	return true, nil
}

func CreateSubTask(c *fiber.Ctx) error {
	userID := identity(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, 400, "Invalid task ID")
	}

	var req SubTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create sub-task", zap.Error(err))
		return fail(c, 400, "Bad request")
	}
	if msg := req.normalize(); msg != "" {
		return fail(c, 400, msg)
	}

	if passed, resp := guardTask(c, taskID, userID); !passed {
		return resp
	}

	subTask := models.SubTask{
		TaskID:      taskID,
		Title:       req.Title,
		IsCompleted: req.IsCompleted,
	}
	subTaskID, err := config.SubTasks.Create(c.UserContext(), &subTask)
	if err != nil {
		logger.ErrorLogger.Error("Error creating sub-task", zap.Error(err))
		return fail(c, 500, "Error creating sub-task")
	}
	subTask.ID = subTaskID

	logger.AuditLogger.Info("Sub-task created", zap.Int("sub_task_id", subTaskID), zap.Int("task_id", taskID))
	return ok(c, 201, "Sub-task created successfully", subTask)
}

func ListSubTasks(c *fiber.Ctx) error {
	userID := identity(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, 400, "Invalid task ID")
	}

	if passed, resp := guardTask(c, taskID, userID); !passed {
		return resp
	}

	subTasks, err := config.SubTasks.ListByTask(c.UserContext(), taskID)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching sub-tasks", zap.Error(err))
		return fail(c, 500, "Error fetching sub-tasks")
	}

	return ok(c, 200, "Sub-tasks fetched successfully", subTasks)
}

func UpdateSubTask(c *fiber.Ctx) error {
	userID := identity(c)

	subTaskID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, 400, "Invalid sub-task ID")
	}

	var req SubTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update sub-task", zap.Error(err))
		return fail(c, 400, "Bad request")
	}
	if msg := req.normalize(); msg != "" {
		return fail(c, 400, msg)
	}

	subTask, err := config.SubTasks.GetByID(c.UserContext(), subTaskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, 404, "Sub-task not found")
		}
		logger.ErrorLogger.Error("Error fetching sub-task", zap.Error(err))
		return fail(c, 500, "Error fetching sub-task")
	}

	// Parent milik akun lain harus tidak bisa dibedakan dari sub-task yang
	// tidak ada
	owned, err := config.Tasks.Exists(c.UserContext(), subTask.TaskID, userID)
	if err != nil {
		logger.ErrorLogger.Error("Error checking task ownership", zap.Error(err))
		return fail(c, 500, "Error fetching sub-task")
	}
	if !owned {
		return fail(c, 404, "Sub-task not found")
	}

	subTask.Title = req.Title
	subTask.IsCompleted = req.IsCompleted
	if err := config.SubTasks.Update(c.UserContext(), subTask); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, 404, "Sub-task not found")
		}
		logger.ErrorLogger.Error("Error updating sub-task", zap.Error(err))
		return fail(c, 500, "Error updating sub-task")
	}

	logger.AuditLogger.Info("Sub-task updated", zap.Int("sub_task_id", subTaskID))
	return ok(c, 200, "Sub-task updated successfully", subTask)
}

func DeleteSubTask(c *fiber.Ctx) error {
	userID := identity(c)

	subTaskID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, 400, "Invalid sub-task ID")
	}

	subTask, err := config.SubTasks.GetByID(c.UserContext(), subTaskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, 404, "Sub-task not found")
		}
		logger.ErrorLogger.Error("Error fetching sub-task", zap.Error(err))
		return fail(c, 500, "Error fetching sub-task")
	}

	owned, err := config.Tasks.Exists(c.UserContext(), subTask.TaskID, userID)
	if err != nil {
		logger.ErrorLogger.Error("Error checking task ownership", zap.Error(err))
		return fail(c, 500, "Error fetching sub-task")
	}
	if !owned {
		return fail(c, 404, "Sub-task not found")
	}

	if err := config.SubTasks.Delete(c.UserContext(), subTaskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, 404, "Sub-task not found")
		}
		logger.ErrorLogger.Error("Error deleting sub-task", zap.Error(err))
		return fail(c, 500, "Error deleting sub-task")
	}

	logger.AuditLogger.Info("Sub-task deleted", zap.Int("sub_task_id", subTaskID))
	return ok(c, 200, "Sub-task deleted successfully", nil)
}
