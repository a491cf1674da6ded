package errors

import "net/http"

var ErrOtpExpired = &Exception{
	Message:    "OTP expired",
	StatusCode: http.StatusBadRequest,
}
