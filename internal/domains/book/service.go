package book

import "context"

// Service is the book business-logic contract consumed by handlers.
type Service interface {
	Create(ctx context.Context, req CreateBookRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	GetByGenre(ctx context.Context, genre string) ([]Book, error)
	GetAll(ctx context.Context) ([]Book, error)
	Edit(ctx context.Context, id int64, req EditBookRequest) error
	Delete(ctx context.Context, id int64) error
}
