package service

import (
	"context"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
)

type bookService struct {
	repo    book.Repository
	authors author.Repository
}

// NewBookService builds the book service. The author repository backs the
// foreign-key checks on create and edit.
func NewBookService(repo book.Repository, authors author.Repository) book.Service {
	return &bookService{repo: repo, authors: authors}
}

func (s *bookService) Create(ctx context.Context, req book.CreateBookRequest) (int64, error) {
	if err := s.checkAuthorExists(ctx, req.AuthorID); err != nil {
		return 0, err
	}
	if err := book.ValidateTitle(req.Title); err != nil {
		return 0, err
	}
	pubYear, err := book.ParsePubYear(req.PubYear)
	if err != nil {
		return 0, err
	}

	b := &book.Book{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		PubYear:  pubYear,
		Genre:    req.Genre,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return 0, err
	}
	return b.ID, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetByGenre(ctx context.Context, genre string) ([]book.Book, error) {
	exists, err := s.repo.GenreExists(ctx, genre)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, book.ErrGenreNotFound
	}
	return s.repo.GetByGenre(ctx, genre)
}

func (s *bookService) GetAll(ctx context.Context) ([]book.Book, error) {
	return s.repo.GetAll(ctx)
}

// Edit applies a partial update. Absent fields keep their stored values;
// present fields go through the same checks as on create.
func (s *bookService) Edit(ctx context.Context, id int64, req book.EditBookRequest) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return book.ErrBookNotFound
	}

	var patch book.Patch

	if req.AuthorID != nil {
		if err := s.checkAuthorExists(ctx, *req.AuthorID); err != nil {
			return err
		}
		patch.AuthorID = req.AuthorID
	}
	if req.Title != nil {
		if err := book.ValidateTitle(*req.Title); err != nil {
			return err
		}
		patch.Title = req.Title
	}
	if req.PubYear != nil {
		pubYear, err := book.ParsePubYear(req.PubYear)
		if err != nil {
			return err
		}
		patch.PubYear = &pubYear
	}
	patch.Genre = req.Genre

	return s.repo.Update(ctx, id, patch)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return book.ErrBookNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *bookService) checkAuthorExists(ctx context.Context, authorID int64) error {
	exists, err := s.authors.ExistsByID(ctx, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return author.ErrAuthorNotFound
	}
	return nil
}
