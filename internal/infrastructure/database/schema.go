package database

import (
	"context"
	"fmt"
	"log"
)

// The catalog schema. Primary keys are identity columns so the database, not
// the application, hands out ids; books.author_id carries a real foreign key.
// The handlers still pre-check references so clients get the catalog's
// specific error messages instead of a constraint violation.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id   BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name TEXT NOT NULL,
		bio  TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id        BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		author_id BIGINT NOT NULL REFERENCES authors(id),
		title     TEXT NOT NULL,
		pub_year  INT  NOT NULL,
		genre     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id       BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_books_genre ON books(genre)`,
}

// EnsureSchema creates the catalog tables if they do not exist yet.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}

	log.Println("[DATABASE] Schema verified")
	return nil
}
