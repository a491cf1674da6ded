package errors

import "net/http"

var ErrUserIDRequired = &Exception{
	Message:    "User ID required",
	StatusCode: http.StatusBadRequest,
}
