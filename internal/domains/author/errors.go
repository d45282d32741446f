package author

import (
	"errors"
	"net/http"
)

var (
	ErrNameTooLong    = errors.New("author name must be <20 chars")
	ErrAuthorNotFound = errors.New("author id doesn't exist in database")
)

// ToHTTPStatus maps domain errors onto response codes. Every validation and
// lookup failure in this API is a 400; anything unexpected is a 500.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNameTooLong),
		errors.Is(err, ErrAuthorNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
