package errors

import "net/http"

var ErrMissingTaskFields = &Exception{
	Message:    "Missing required fields",
	StatusCode: http.StatusBadRequest,
}
