package errors

import "net/http"

var ErrInvalidOtpType = &Exception{
	Message:    "Invalid OTP type",
	StatusCode: http.StatusBadRequest,
}
