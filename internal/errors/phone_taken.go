package errors

import "net/http"

var ErrPhoneTaken = &Exception{
	Message:    "Phone number already used. Please login.",
	StatusCode: http.StatusBadRequest,
}
