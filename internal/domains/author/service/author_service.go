package service

import (
	"context"

	"library-backend/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req author.CreateAuthorRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	a := &author.Author{
		Name: req.Name,
		Bio:  req.Bio,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

// Delete removes an author and, when the author still has books, those books
// with it.
func (s *authorService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return author.ErrAuthorNotFound
	}

	hasBooks, err := s.repo.HasBooks(ctx, id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, id, hasBooks)
}
