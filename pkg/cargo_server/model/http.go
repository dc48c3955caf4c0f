package model

import (
	"errors"
	"net/http"
)

// ErrorToHttpStatus maps an error category to the HTTP status the API layer
// should respond with.
func ErrorToHttpStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserError):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotification):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
