package book

import (
	"errors"
	"net/http"

	"library-backend/internal/domains/author"
)

var (
	ErrTitleTooLong   = errors.New("book title must be <20 chars")
	ErrInvalidPubYear = errors.New("pub_year must be a 4-digit number")
	ErrBookNotFound   = errors.New("book id doesn't exist in database")
	ErrGenreNotFound  = errors.New("genre doesn't exist in database")
	ErrMissingBookID  = errors.New("must input a book id")
)

// ToHTTPStatus maps domain errors onto response codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrInvalidPubYear),
		errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrGenreNotFound),
		errors.Is(err, ErrMissingBookID),
		errors.Is(err, author.ErrAuthorNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
