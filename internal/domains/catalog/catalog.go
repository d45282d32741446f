package catalog

import "errors"

// ResourceType names the kinds of catalog records deleteResource can target.
type ResourceType string

const (
	ResourceAuthor ResourceType = "author"
	ResourceBook   ResourceType = "book"
)

var ErrInvalidResourceType = errors.New("invalid request type (author, book)")

// ParseResourceType validates the type query parameter at the boundary so
// handlers only ever see a known variant.
func ParseResourceType(s string) (ResourceType, error) {
	switch ResourceType(s) {
	case ResourceAuthor:
		return ResourceAuthor, nil
	case ResourceBook:
		return ResourceBook, nil
	default:
		return "", ErrInvalidResourceType
	}
}
