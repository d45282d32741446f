package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
	"library-backend/pkg/database"
)

type postgresAuthorRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAuthorRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresAuthorRepository{pool: pool}
}

func (r *postgresAuthorRepository) Create(ctx context.Context, a *author.Author) error {
	query := `
		INSERT INTO authors (name, bio)
		VALUES ($1, $2)
		RETURNING id`

	if err := r.pool.QueryRow(ctx, query, a.Name, a.Bio).Scan(&a.ID); err != nil {
		return fmt.Errorf("insert author: %w", err)
	}
	return nil
}

func (r *postgresAuthorRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `SELECT id, name, bio FROM authors WHERE id = $1`

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Bio)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, author.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select author: %w", err)
	}
	return &a, nil
}

func (r *postgresAuthorRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `SELECT id, name, bio FROM authors ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select authors: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0)
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Bio); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *postgresAuthorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check author exists: %w", err)
	}
	return exists, nil
}

func (r *postgresAuthorRepository) HasBooks(ctx context.Context, id int64) (bool, error) {
	var has bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE author_id = $1)`, id).Scan(&has)
	if err != nil {
		return false, fmt.Errorf("check author books: %w", err)
	}
	return has, nil
}

// Delete removes an author. With cascade set, the author's books go in the
// same transaction so a failure leaves both tables untouched.
func (r *postgresAuthorRepository) Delete(ctx context.Context, id int64, cascade bool) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if cascade {
			if _, err := tx.Exec(ctx, `DELETE FROM books WHERE author_id = $1`, id); err != nil {
				return fmt.Errorf("delete author books: %w", err)
			}
		}
		if _, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete author: %w", err)
		}
		return nil
	})
}
