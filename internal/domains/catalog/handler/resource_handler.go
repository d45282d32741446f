package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/catalog"
	"library-backend/internal/shared/response"
)

// ResourceHandler serves deleteResource, which spans both catalog domains.
type ResourceHandler struct {
	authors author.Service
	books   book.Service
}

func NewResourceHandler(authors author.Service, books book.Service) *ResourceHandler {
	return &ResourceHandler{authors: authors, books: books}
}

// Delete handles DELETE /api/deleteResource?type=author|book&id=N. The type
// is checked first; an unparsable id then falls through to the per-domain
// not-found error. Deleting an author also deletes the author's books.
func (h *ResourceHandler) Delete(c *gin.Context) {
	resourceType, err := catalog.ParseResourceType(c.Query("type"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// An unparsable id becomes 0, which never matches a row.
	id, _ := strconv.ParseInt(c.Query("id"), 10, 64)

	switch resourceType {
	case catalog.ResourceAuthor:
		err = h.authors.Delete(c.Request.Context(), id)
		if err != nil {
			h.respondError(c, err, author.ToHTTPStatus(err))
			return
		}
	case catalog.ResourceBook:
		err = h.books.Delete(c.Request.Context(), id)
		if err != nil {
			h.respondError(c, err, book.ToHTTPStatus(err))
			return
		}
	}

	c.Status(http.StatusOK)
}

func (h *ResourceHandler) respondError(c *gin.Context, err error, status int) {
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("delete resource failed")
		response.InternalServerError(c)
		return
	}
	response.Error(c, status, err.Error())
}
