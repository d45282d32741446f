package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxNameLength = 20

// CreateAuthorRequest is the addAuthor payload. Bio is optional and defaults
// to the empty string.
type CreateAuthorRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

func (r CreateAuthorRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(0, maxNameLength)),
	); err != nil {
		return ErrNameTooLong
	}
	return nil
}
