package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/user"
)

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresUserRepository{pool: pool}
}

func (r *postgresUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT id, username, password FROM users WHERE username = $1`

	var u user.User
	err := r.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

func (r *postgresUserRepository) Upsert(ctx context.Context, username, passwordHash string) (*user.User, error) {
	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password
		RETURNING id`

	u := &user.User{Username: username, PasswordHash: passwordHash}
	if err := r.pool.QueryRow(ctx, query, username, passwordHash).Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return u, nil
}
