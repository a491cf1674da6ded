package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shubhamagrahari9191/Todolist/internal/constants"
	apperrors "github.com/Shubhamagrahari9191/Todolist/internal/errors"
	"github.com/Shubhamagrahari9191/Todolist/internal/http/validators"
	"github.com/Shubhamagrahari9191/Todolist/internal/services"
)

type createTaskRequest struct {
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Subject   string `json:"subject"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsEvent   bool   `json:"isEvent"`
}

// updateTaskRequest mirrors the sparse patch contract: pointer fields left
// nil in the JSON body are not applied.
type updateTaskRequest struct {
	TaskID    string                `json:"taskId"`
	Title     *string               `json:"title"`
	Subject   *string               `json:"subject"`
	Date      *string               `json:"date"`
	StartTime *string               `json:"startTime"`
	EndTime   *string               `json:"endTime"`
	IsEvent   *bool                 `json:"isEvent"`
	Status    *constants.TaskStatus `json:"status"`
	Progress  *int                  `json:"progress"`
}

func (h *Handler) ListTasks(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return respondError(c, apperrors.ErrUserIDRequired, "Failed to fetch tasks")
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err, "Failed to fetch tasks")
	}

	return c.JSON(http.StatusOK, echo.Map{"tasks": tasks})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON payload"})
	}
	if err := validators.ValidateCreateTaskRequest(req.UserID, req.Title, req.Date); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), services.CreateTaskInput{
		UserID:    req.UserID,
		Title:     req.Title,
		Subject:   req.Subject,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsEvent:   req.IsEvent,
	})
	if err != nil {
		return respondError(c, err, "Failed to create task")
	}

	return c.JSON(http.StatusOK, echo.Map{"task": task})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON payload"})
	}
	if req.TaskID == "" {
		return respondError(c, apperrors.ErrTaskIDRequired, "Failed to update task")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), req.TaskID, services.TaskPatch{
		Title:     req.Title,
		Subject:   req.Subject,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsEvent:   req.IsEvent,
		Status:    req.Status,
		Progress:  req.Progress,
	})
	if err != nil {
		return respondError(c, err, "Failed to update task")
	}

	return c.JSON(http.StatusOK, echo.Map{"task": task})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	taskID := c.QueryParam("taskId")
	if taskID == "" {
		return respondError(c, apperrors.ErrTaskIDRequired, "Failed to delete task")
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), taskID); err != nil {
		return respondError(c, err, "Failed to delete task")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
