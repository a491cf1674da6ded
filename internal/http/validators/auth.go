package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func ValidateRegisterRequest(username, password, otp string) error {
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}
	if password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	if otp == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "otp is required")
	}
	return nil
}

func ValidateResetPasswordRequest(identifier, password, otp string) error {
	if identifier == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "identifier is required")
	}
	if password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	if otp == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "otp is required")
	}
	return nil
}
