package errors

import "net/http"

var ErrTaskIDRequired = &Exception{
	Message:    "Task ID required",
	StatusCode: http.StatusBadRequest,
}
