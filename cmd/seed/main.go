// seed provisions (or rotates) an admin user in the local dev database.
// Run: ADMIN_EMAIL=you@example.com ADMIN_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/scenescore/scenescore/internal/infrastructure/postgres"
)

const (
	defaultEmail    = "admin@scenescore.local"
	defaultPassword = "changeme123"
)

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultEmail
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultPassword
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Upsert keeps the user's id (and their projects) when the password
	// is rotated, instead of deleting and recreating the row.
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash, updated_at = NOW()
		RETURNING id`,
		email, string(hash),
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert admin: %v", err)
	}

	fmt.Println("admin user ready")
	fmt.Println("  id:   ", userID)
	fmt.Println("  email:", email)
}
