package user

import "context"

// Repository is the persistence contract for user accounts.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	// Upsert creates the account or replaces its password hash. Used by the
	// seed command; the API itself has no registration endpoint.
	Upsert(ctx context.Context, username, passwordHash string) (*User, error)
}
