package author

import "context"

// Service is the author business-logic contract consumed by handlers.
type Service interface {
	Create(ctx context.Context, req CreateAuthorRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*Author, error)
	GetAll(ctx context.Context) ([]Author, error)
	Delete(ctx context.Context, id int64) error
}
