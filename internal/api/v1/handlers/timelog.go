package handlers

import (
	"errors"
	"time"

	"todo-api/internal/config"
	"todo-api/internal/models"
	"todo-api/internal/repository"
	"todo-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TimeLog handlers. Setiap task adalah state machine dua keadaan:
// Idle -> Running saat start, Running -> Idle saat stop. Maksimal satu log
// berjalan per task; pelanggarannya ditolak oleh storage, bukan oleh
// read-check-write di sini.

func timeLogResponse(timeLog *models.TimeLog) fiber.Map {
	resp := fiber.Map{
		"id":         timeLog.ID,
		"task_id":    timeLog.TaskID,
		"started_at": timeLog.StartedAt,
		"is_running": timeLog.IsRunning(),
	}
	if timeLog.EndedAt != nil {
		resp["ended_at"] = timeLog.EndedAt
	}
	if d := timeLog.DurationMinutes(); d != nil {
		resp["duration_minutes"] = *d
	}
	return resp
}

func ListTimeLogs(c *fiber.Ctx) error {
	userID := identity(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, 400, "Invalid task ID")
	}

	if passed, resp := guardTask(c, taskID, userID); !passed {
		return resp
	}

	timeLogs, err := config.TimeLogs.ListByTask(c.UserContext(), taskID)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching time logs", zap.Error(err))
		return fail(c, 500, "Error fetching time logs")
	}

	response := make([]fiber.Map, 0, len(timeLogs))
	for i := range timeLogs {
		response = append(response, timeLogResponse(&timeLogs[i]))
	}
	return ok(c, 200, "Time logs fetched successfully", response)
}

func StartTimeLog(c *fiber.Ctx) error {
	userID := identity(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, 400, "Invalid task ID")
	}

	type StartRequest struct {
		StartedAt *time.Time `json:"started_at"`
	}
	var req StartRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			logger.ErrorLogger.Error("Bad request in start time log", zap.Error(err))
			return fail(c, 400, "Bad request")
		}
	}

	if passed, resp := guardTask(c, taskID, userID); !passed {
		return resp
	}

	startedAt := time.Now().UTC()
	if req.StartedAt != nil {
		startedAt = req.StartedAt.UTC()
	}

	timeLog, err := config.TimeLogs.Start(c.UserContext(), taskID, startedAt)
	if err != nil {
		if errors.Is(err, repository.ErrTimerRunning) {
			return fail(c, 409, "Task already has a running time log")
		}
		logger.ErrorLogger.Error("Error starting time log", zap.Error(err))
		return fail(c, 500, "Error starting time log")
	}

	if config.Hub != nil {
		config.Hub.Publish("timelog.started", timeLog)
	}

	logger.AuditLogger.Info("Time log started", zap.Int("task_id", taskID), zap.Int("time_log_id", timeLog.ID))
	return ok(c, 201, "Time log started", timeLogResponse(timeLog))
}

func StopTimeLog(c *fiber.Ctx) error {
	userID := identity(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, 400, "Invalid task ID")
	}

	type StopRequest struct {
		EndedAt *time.Time `json:"ended_at"`
	}
	var req StopRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			logger.ErrorLogger.Error("Bad request in stop time log", zap.Error(err))
			return fail(c, 400, "Bad request")
		}
	}

	if passed, resp := guardTask(c, taskID, userID); !passed {
		return resp
	}

	endedAt := time.Now().UTC()
	if req.EndedAt != nil {
		endedAt = req.EndedAt.UTC()
	}

	timeLog, err := config.TimeLogs.Stop(c.UserContext(), taskID, endedAt)
	if err != nil {
		if errors.Is(err, repository.ErrTimerNotRunning) {
			return fail(c, 404, "Task has no running time log")
		}
		if errors.Is(err, repository.ErrEndBeforeStart) {
			return fail(c, 400, "End time cannot be earlier than start time")
		}
		logger.ErrorLogger.Error("Error stopping time log", zap.Error(err))
		return fail(c, 500, "Error stopping time log")
	}

	if config.Hub != nil {
		config.Hub.Publish("timelog.stopped", timeLog)
	}

	logger.AuditLogger.Info("Time log stopped", zap.Int("task_id", taskID), zap.Int("time_log_id", timeLog.ID))
	return ok(c, 200, "Time log stopped", timeLogResponse(timeLog))
}
