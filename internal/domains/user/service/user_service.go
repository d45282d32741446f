package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/auth"
	"library-backend/internal/domains/user"
)

type userService struct {
	repo     user.Repository
	sessions *auth.Manager
}

func NewUserService(repo user.Repository, sessions *auth.Manager) user.Service {
	return &userService{repo: repo, sessions: sessions}
}

// Login checks the username, then the password, and only then issues a
// token. The two failure modes are reported separately.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (string, error) {
	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", user.ErrPasswordIncorrect
	}

	return s.sessions.Create(ctx, u.ID)
}

func (s *userService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}
