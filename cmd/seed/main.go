package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/config"
	"library-backend/internal/domains/user/repository"
	"library-backend/internal/infrastructure/database"
)

// Seed creates (or updates) the account used to log into the API. There is
// no registration endpoint, so this is the only way accounts get made.
//
// Usage: SEED_USERNAME=admin SEED_PASSWORD=secret go run ./cmd/seed
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	username := os.Getenv("SEED_USERNAME")
	password := os.Getenv("SEED_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("SEED_USERNAME and SEED_PASSWORD must be set")
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	repo := repository.NewPostgresUserRepository(db.Pool)
	u, err := repo.Upsert(ctx, username, string(hash))
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	log.Printf("Seeded user %q (id=%d)", u.Username, u.ID)
}
