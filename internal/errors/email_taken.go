package errors

import "net/http"

var ErrEmailTaken = &Exception{
	Message:    "Email already registered. Please login.",
	StatusCode: http.StatusBadRequest,
}
