package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	middleware "github.com/Shubhamagrahari9191/Todolist/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.HTTPErrorHandler = errorHandler
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/api/auth", h.Auth)

	e.GET("/api/tasks", h.ListTasks)
	e.POST("/api/tasks", h.CreateTask)
	e.PUT("/api/tasks", h.UpdateTask)
	e.DELETE("/api/tasks", h.DeleteTask)

	e.GET("/api/analytics", h.Analytics)
	e.GET("/api/report", h.Report)
}

// errorHandler keeps transport-level failures (binding, validation, 404s)
// on the same {"error": ...} wire shape the domain errors use.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"
	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	_ = c.JSON(code, echo.Map{"error": message})
}
