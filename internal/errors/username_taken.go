package errors

import "net/http"

var ErrUsernameTaken = &Exception{
	Message:    "Username already taken",
	StatusCode: http.StatusBadRequest,
}
