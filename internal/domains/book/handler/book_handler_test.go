package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"library-backend/internal/domains/book"
)

type stubBookService struct {
	createID  int64
	createErr error
	byID      *book.Book
	byIDErr   error
	byGenre   []book.Book
	genreErr  error
	all       []book.Book
	allErr    error
	editErr   error
	deleteErr error

	gotEdit book.EditBookRequest
}

func (s *stubBookService) Create(_ context.Context, _ book.CreateBookRequest) (int64, error) {
	return s.createID, s.createErr
}

func (s *stubBookService) GetByID(_ context.Context, _ int64) (*book.Book, error) {
	return s.byID, s.byIDErr
}

func (s *stubBookService) GetByGenre(_ context.Context, _ string) ([]book.Book, error) {
	return s.byGenre, s.genreErr
}

func (s *stubBookService) GetAll(_ context.Context) ([]book.Book, error) {
	return s.all, s.allErr
}

func (s *stubBookService) Edit(_ context.Context, _ int64, req book.EditBookRequest) error {
	s.gotEdit = req
	return s.editErr
}

func (s *stubBookService) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

func setupRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)
	r := gin.New()
	r.POST("/api/addBook", h.Create)
	r.GET("/api/getBooks", h.Get)
	r.PUT("/api/editBook", h.Edit)
	return r
}

func TestBookHandler_Create(t *testing.T) {
	r := setupRouter(&stubBookService{createID: 9})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/addBook",
		strings.NewReader(`{"author_id":1,"title":"Dune","pub_year":1965,"genre":"sci-fi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":9}`, w.Body.String())
}

func TestBookHandler_Create_InvalidPubYear(t *testing.T) {
	r := setupRouter(&stubBookService{createErr: book.ErrInvalidPubYear})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/addBook",
		strings.NewReader(`{"author_id":1,"title":"Dune","pub_year":"soon"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"pub_year must be a 4-digit number"}`, w.Body.String())
}

func TestBookHandler_Get_ByID(t *testing.T) {
	r := setupRouter(&stubBookService{
		byID: &book.Book{ID: 3, AuthorID: 1, Title: "Dune", PubYear: 1965, Genre: "sci-fi"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/getBooks?id=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":3,"author_id":1,"title":"Dune","pub_year":1965,"genre":"sci-fi"}`, w.Body.String())
}

func TestBookHandler_Get_UnknownID(t *testing.T) {
	r := setupRouter(&stubBookService{byIDErr: book.ErrBookNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/getBooks?id=77", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"book id doesn't exist in database"}`, w.Body.String())
}

func TestBookHandler_Get_NonNumericID(t *testing.T) {
	r := setupRouter(&stubBookService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/getBooks?id=x", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"book id doesn't exist in database"}`, w.Body.String())
}

func TestBookHandler_Get_ByGenre(t *testing.T) {
	r := setupRouter(&stubBookService{byGenre: []book.Book{
		{ID: 1, AuthorID: 1, Title: "Dune", PubYear: 1965, Genre: "sci-fi"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/getBooks?genre=sci-fi", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"author_id":1,"title":"Dune","pub_year":1965,"genre":"sci-fi"}]`, w.Body.String())
}

func TestBookHandler_Get_UnknownGenre(t *testing.T) {
	r := setupRouter(&stubBookService{genreErr: book.ErrGenreNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/getBooks?genre=horror", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"genre doesn't exist in database"}`, w.Body.String())
}

func TestBookHandler_Get_All_Empty(t *testing.T) {
	r := setupRouter(&stubBookService{all: []book.Book{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/getBooks", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestBookHandler_Edit(t *testing.T) {
	svc := &stubBookService{}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/editBook?id=5",
		strings.NewReader(`{"title":"Dune Messiah"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":5}`, w.Body.String())
	if assert.NotNil(t, svc.gotEdit.Title) {
		assert.Equal(t, "Dune Messiah", *svc.gotEdit.Title)
	}
	assert.Nil(t, svc.gotEdit.AuthorID)
	assert.Nil(t, svc.gotEdit.Genre)
}

func TestBookHandler_Edit_MissingID(t *testing.T) {
	r := setupRouter(&stubBookService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/editBook",
		strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"must input a book id"}`, w.Body.String())
}

func TestBookHandler_Edit_UnknownBook(t *testing.T) {
	r := setupRouter(&stubBookService{editErr: book.ErrBookNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/editBook?id=88",
		strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"book id doesn't exist in database"}`, w.Body.String())
}
