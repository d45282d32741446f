package book

import "context"

// Patch carries the resolved editBook changes. Nil fields keep the stored
// value.
type Patch struct {
	AuthorID *int64
	Title    *string
	PubYear  *int
	Genre    *string
}

// Repository is the persistence contract for books.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id int64) (*Book, error)
	GetByGenre(ctx context.Context, genre string) ([]Book, error)
	GetAll(ctx context.Context) ([]Book, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GenreExists(ctx context.Context, genre string) (bool, error)
	Update(ctx context.Context, id int64, patch Patch) error
	Delete(ctx context.Context, id int64) error
}
