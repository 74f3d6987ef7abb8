// Command migrate prepares the Postgres schema the server persists
// into. It is safe to run repeatedly.
package main

import (
	"context"
	"log"
	"time"

	"github.com/ryo-harano/coffee-app/internal/config"
	"github.com/ryo-harano/coffee-app/internal/db"
	"github.com/ryo-harano/coffee-app/internal/store"
)

func main() {
	cfg := config.LoadConfig()
	if !cfg.HasDatabase() {
		log.Fatal("no database configured, set DB_HOST and friends first")
	}

	database, err := db.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.NewPostgres(database).EnsureSchema(ctx); err != nil {
		log.Fatalf("preparing schema: %v", err)
	}

	log.Println("storage schema ready")
}
