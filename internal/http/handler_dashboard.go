package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Shubhamagrahari9191/Todolist/internal/errors"
	"github.com/Shubhamagrahari9191/Todolist/internal/services"
)

// Analytics returns the chart-ready aggregates for a user's task list:
// subject distribution, 7-day completion trend, donut scorecard and the
// segmented progress bar.
func (h *Handler) Analytics(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return respondError(c, apperrors.ErrUserIDRequired, "Failed to build analytics")
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err, "Failed to build analytics")
	}

	now := time.Now()
	return c.JSON(http.StatusOK, echo.Map{
		"subjects":  services.SubjectDistribution(tasks),
		"trend":     services.CompletionTrend(tasks, now),
		"scorecard": services.BuildScorecard(tasks),
		"segments":  services.BuildProgressSegments(tasks),
	})
}

// Report renders the printable task report as a plain-text download.
func (h *Handler) Report(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return respondError(c, apperrors.ErrUserIDRequired, "Failed to generate report")
	}

	ctx := c.Request().Context()

	user, err := h.authService.UserByID(ctx, userID)
	if err != nil {
		return respondError(c, err, "Failed to generate report")
	}

	tasks, err := h.taskService.ListTasks(ctx, userID)
	if err != nil {
		return respondError(c, err, "Failed to generate report")
	}

	report := services.BuildReport(tasks, user.Username, time.Now())

	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "planner_report_"+user.Username+".txt"),
	)
	return c.String(http.StatusOK, report)
}
