package errors

import "net/http"

var ErrInvalidOtp = &Exception{
	Message:    "Invalid OTP",
	StatusCode: http.StatusBadRequest,
}
