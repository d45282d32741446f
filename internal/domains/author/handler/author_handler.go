package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Create handles POST /api/addAuthor and responds with the new author's id.
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"id": id})
}

// Get handles GET /api/getAuthors. With an id query parameter it returns a
// one-element list holding that author; without one it returns every author.
func (h *AuthorHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if rawID, ok := c.GetQuery("id"); ok {
		// A non-numeric id can't match any author.
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			response.BadRequest(c, author.ErrAuthorNotFound.Error())
			return
		}

		a, err := h.service.GetByID(ctx, id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.JSON(c, http.StatusOK, []author.Author{*a})
		return
	}

	authors, err := h.service.GetAll(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, authors)
}

func (h *AuthorHandler) respondError(c *gin.Context, err error) {
	status := author.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("author operation failed")
		response.InternalServerError(c)
		return
	}
	response.Error(c, status, err.Error())
}
