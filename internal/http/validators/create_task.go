package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func ValidateCreateTaskRequest(userID, title, date string) error {
	if userID == "" || title == "" || date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}
	return nil
}
