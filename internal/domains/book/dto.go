package book

import (
	"encoding/json"
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxTitleLength = 20
	minPubYear     = 1000
	maxPubYear     = 9999
)

// CreateBookRequest is the addBook payload. PubYear is typed loosely because
// clients may send it as a JSON number or string; anything that is not a
// whole number in range is rejected with ErrInvalidPubYear.
type CreateBookRequest struct {
	AuthorID int64  `json:"author_id"`
	Title    string `json:"title"`
	PubYear  any    `json:"pub_year"`
	Genre    string `json:"genre"`
}

// EditBookRequest is the editBook payload. Every field is optional; only the
// fields present in the body are applied.
type EditBookRequest struct {
	AuthorID *int64  `json:"author_id"`
	Title    *string `json:"title"`
	PubYear  any     `json:"pub_year"`
	Genre    *string `json:"genre"`
}

func ValidateTitle(title string) error {
	if err := validation.Validate(title, validation.Length(0, maxTitleLength)); err != nil {
		return ErrTitleTooLong
	}
	return nil
}

// ParsePubYear normalizes the loosely typed pub_year field. JSON numbers
// decode as float64, so integral values are accepted and everything else
// (strings, fractions, out-of-range years) maps to ErrInvalidPubYear.
func ParsePubYear(v any) (int, error) {
	var year int

	switch value := v.(type) {
	case float64:
		if value != math.Trunc(value) {
			return 0, ErrInvalidPubYear
		}
		year = int(value)
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0, ErrInvalidPubYear
		}
		year = int(n)
	case int:
		year = value
	default:
		return 0, ErrInvalidPubYear
	}

	if year < minPubYear || year > maxPubYear {
		return 0, ErrInvalidPubYear
	}
	return year, nil
}
