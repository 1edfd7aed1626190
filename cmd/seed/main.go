package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"schoolportal/internal/config"
	"schoolportal/internal/store"
	"schoolportal/internal/user"
)

// Seeds the default account set. Safe to run repeatedly: existing usernames
// are left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := user.NewRepository(db)
	accounts := user.DefaultAccounts()
	created, err := users.Seed(context.Background(), accounts)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("seed complete: %d of %d accounts created", created, len(accounts))
}
