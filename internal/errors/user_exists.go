package errors

import "net/http"

var ErrUserExists = &Exception{
	Message:    "User already exists with this email/phone",
	StatusCode: http.StatusBadRequest,
}
