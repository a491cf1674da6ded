package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Shubhamagrahari9191/Todolist/internal/errors"
	"github.com/Shubhamagrahari9191/Todolist/internal/services"
)

type Handler struct {
	authService *services.AuthService
	taskService *services.TaskService
}

func NewHandler(authService *services.AuthService, taskService *services.TaskService) *Handler {
	return &Handler{
		authService: authService,
		taskService: taskService,
	}
}

// respondError maps domain errors onto their JSON error bodies. Anything
// outside the taxonomy is an unexpected store failure: logged, surfaced as
// a generic 500 with a details field.
func respondError(c echo.Context, err error, fallback string) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return c.JSON(appErr.StatusCode, echo.Map{"error": appErr.Message})
	}

	log.Printf("[API Error] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error":   fallback,
		"details": err.Error(),
	})
}
