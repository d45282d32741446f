package author

import "context"

// Repository is the persistence contract for authors.
type Repository interface {
	Create(ctx context.Context, a *Author) error
	GetByID(ctx context.Context, id int64) (*Author, error)
	GetAll(ctx context.Context) ([]Author, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	HasBooks(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64, cascade bool) error
}
