package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Shubhamagrahari9191/Todolist/internal/errors"
	"github.com/Shubhamagrahari9191/Todolist/internal/http/validators"
	"github.com/Shubhamagrahari9191/Todolist/internal/services"
)

type authRequest struct {
	Action     string `json:"action"`
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Otp        string `json:"otp"`
}

// Auth is the single action-dispatched identity endpoint: send-otp,
// register, login and reset-password all enter here.
func (h *Handler) Auth(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON payload"})
	}

	switch req.Action {
	case "send-otp":
		return h.sendOtp(c, req)
	case "register":
		return h.register(c, req)
	case "login":
		return h.login(c, req)
	case "reset-password":
		return h.resetPassword(c, req)
	default:
		return respondError(c, apperrors.ErrInvalidAction, "Auth failed")
	}
}

func (h *Handler) sendOtp(c echo.Context, req authRequest) error {
	if err := h.authService.SendOtp(c.Request().Context(), req.Type, req.Identifier); err != nil {
		return respondError(c, err, "Failed to send OTP")
	}

	message := "OTP sent for registration"
	if req.Type == services.OtpPurposeReset {
		message = "OTP sent for reset"
	}
	return c.JSON(http.StatusOK, echo.Map{"message": message})
}

func (h *Handler) register(c echo.Context, req authRequest) error {
	if err := validators.ValidateRegisterRequest(req.Username, req.Password, req.Otp); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		Otp:      req.Otp,
	})
	if err != nil {
		return respondError(c, err, "Registration failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *Handler) login(c echo.Context, req authRequest) error {
	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err, "Login failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *Handler) resetPassword(c echo.Context, req authRequest) error {
	if err := validators.ValidateResetPasswordRequest(req.Identifier, req.Password, req.Otp); err != nil {
		return err
	}

	err := h.authService.ResetPassword(c.Request().Context(), req.Identifier, req.Otp, req.Password)
	if err != nil {
		return respondError(c, err, "Password reset failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Password reset successfully"})
}
