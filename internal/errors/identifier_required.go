package errors

import "net/http"

var ErrIdentifierRequired = &Exception{
	Message:    "Identifier required",
	StatusCode: http.StatusBadRequest,
}
