package user

import "context"

// Service is the auth business-logic contract consumed by handlers.
type Service interface {
	// Login verifies the credentials and returns a fresh session token.
	Login(ctx context.Context, req LoginRequest) (string, error)
	// Logout revokes the given session token.
	Logout(ctx context.Context, token string) error
}
