package user

import (
	"errors"
	"net/http"
)

var (
	ErrUserNotFound      = errors.New("no user exists with that username")
	ErrPasswordIncorrect = errors.New("password is incorrect")
)

// ToHTTPStatus maps domain errors onto response codes. Login failures are
// 400s so the client can show the message as-is.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPasswordIncorrect):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
