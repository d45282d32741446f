package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResourceType(t *testing.T) {
	got, err := ParseResourceType("author")
	assert.NoError(t, err)
	assert.Equal(t, ResourceAuthor, got)

	got, err = ParseResourceType("book")
	assert.NoError(t, err)
	assert.Equal(t, ResourceBook, got)

	_, err = ParseResourceType("magazine")
	assert.ErrorIs(t, err, ErrInvalidResourceType)

	_, err = ParseResourceType("")
	assert.ErrorIs(t, err, ErrInvalidResourceType)

	// Case-sensitive on purpose; the API contract is lowercase.
	_, err = ParseResourceType("Author")
	assert.ErrorIs(t, err, ErrInvalidResourceType)
}
