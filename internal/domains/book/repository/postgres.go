package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
)

type postgresBookRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBookRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresBookRepository{pool: pool}
}

func (r *postgresBookRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (author_id, title, pub_year, genre)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query, b.AuthorID, b.Title, b.PubYear, b.Genre).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *postgresBookRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	query := `SELECT id, author_id, title, pub_year, genre FROM books WHERE id = $1`

	var b book.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.AuthorID, &b.Title, &b.PubYear, &b.Genre)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select book: %w", err)
	}
	return &b, nil
}

func (r *postgresBookRepository) GetByGenre(ctx context.Context, genre string) ([]book.Book, error) {
	query := `SELECT id, author_id, title, pub_year, genre FROM books WHERE genre = $1 ORDER BY id`
	return r.queryBooks(ctx, query, genre)
}

func (r *postgresBookRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	query := `SELECT id, author_id, title, pub_year, genre FROM books ORDER BY id`
	return r.queryBooks(ctx, query)
}

func (r *postgresBookRepository) queryBooks(ctx context.Context, query string, args ...any) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.AuthorID, &b.Title, &b.PubYear, &b.Genre); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *postgresBookRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check book exists: %w", err)
	}
	return exists, nil
}

func (r *postgresBookRepository) GenreExists(ctx context.Context, genre string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE genre = $1)`, genre).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check genre exists: %w", err)
	}
	return exists, nil
}

// Update applies a partial edit in one statement; NULL arguments keep the
// stored column value.
func (r *postgresBookRepository) Update(ctx context.Context, id int64, patch book.Patch) error {
	query := `
		UPDATE books
		SET author_id = COALESCE($2, author_id),
		    title     = COALESCE($3, title),
		    pub_year  = COALESCE($4, pub_year),
		    genre     = COALESCE($5, genre)
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, patch.AuthorID, patch.Title, patch.PubYear, patch.Genre)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *postgresBookRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}
