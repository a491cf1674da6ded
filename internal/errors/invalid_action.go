package errors

import "net/http"

var ErrInvalidAction = &Exception{
	Message:    "Invalid action",
	StatusCode: http.StatusBadRequest,
}
