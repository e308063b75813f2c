package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/akhileshasapu/passvault/internal/config"
	"github.com/akhileshasapu/passvault/internal/database"
)

func main() {
	if len(os.Args) != 2 || (os.Args[1] != "up" && os.Args[1] != "version") {
		fmt.Println("Usage: passvault-migrate <up|version>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		log.Fatalf("Migrations need STORE_DRIVER=%s, got %s", config.StoreDriverPostgres, cfg.StoreDriver)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if os.Args[1] == "up" {
		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	version, err := db.MigrationVersion(ctx)
	if err != nil {
		log.Fatalf("Failed to read migration version: %v", err)
	}

	fmt.Printf("Database at migration version %d\n", version)
}
