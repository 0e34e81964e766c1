package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/gearshare/gearshare/config"
	"github.com/gearshare/gearshare/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@gearshare.dev"
	password := "password123"
	username := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, username, image)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, email, hash, username, cfg.DefaultImageURL).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s username=%s password=%s\n", id, email, username, password)

	if _, err := db.Exec(`
		INSERT INTO devices (user_id, name, comment, image)
		VALUES ($1, 'PlayStation 5', 'daily driver', $2)
	`, id, cfg.DefaultImageURL); err != nil {
		log.Fatalf("failed to seed device: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO posts (user_id, content)
		VALUES ($1, 'First post from the seeded demo account.')
	`, id); err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	fmt.Println("seeded demo device and post")
}
