package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// Create handles POST /api/addBook and responds with the new book's id.
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
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

// Get handles GET /api/getBooks. An id query returns the single book, a
// genre query returns the books in that genre, and no query returns all
// books.
func (h *BookHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if rawID, ok := c.GetQuery("id"); ok {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			response.BadRequest(c, book.ErrBookNotFound.Error())
			return
		}

		b, err := h.service.GetByID(ctx, id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.JSON(c, http.StatusOK, b)
		return
	}

	if genre, ok := c.GetQuery("genre"); ok {
		books, err := h.service.GetByGenre(ctx, genre)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.JSON(c, http.StatusOK, books)
		return
	}

	books, err := h.service.GetAll(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, books)
}

// Edit handles PUT /api/editBook?id=N with a partial body.
func (h *BookHandler) Edit(c *gin.Context) {
	rawID, ok := c.GetQuery("id")
	if !ok || rawID == "" {
		response.BadRequest(c, book.ErrMissingBookID.Error())
		return
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.BadRequest(c, book.ErrBookNotFound.Error())
		return
	}

	var req book.EditBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.Edit(c.Request.Context(), id, req); err != nil {
		h.respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"id": id})
}

func (h *BookHandler) respondError(c *gin.Context, err error) {
	status := book.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("book operation failed")
		response.InternalServerError(c)
		return
	}
	response.Error(c, status, err.Error())
}
