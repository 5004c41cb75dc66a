package main

import (
	"flag"
	"log"
	"os"

	"ticket-marketplace-backend/internal/config"
	"ticket-marketplace-backend/internal/services"
	"ticket-marketplace-backend/internal/store"
	"ticket-marketplace-backend/pkg/database"
	"ticket-marketplace-backend/pkg/kv"

	"github.com/joho/godotenv"
)

// Seeds the configured backend with the demo dataset. With -reset, existing
// data is wiped first; otherwise collections that already exist are kept.
func main() {
	reset := flag.Bool("reset", false, "wipe existing data before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	var backend kv.Store
	switch cfg.Storage {
	case "postgres":
		db, dbErr := database.NewPostgresDB(cfg)
		if dbErr != nil {
			log.Fatalf("Database connection error: %v", dbErr)
		}
		if *reset {
			if err := db.Exec("DELETE FROM kv_entries").Error; err != nil {
				log.Fatalf("Reset error: %v", err)
			}
		}
		backend, err = kv.NewGormStore(db)
		if err != nil {
			log.Fatalf("Storage error: %v", err)
		}
	default:
		if *reset {
			if err := os.RemoveAll(cfg.DataDir); err != nil {
				log.Fatalf("Reset error: %v", err)
			}
		}
		backend, err = kv.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Storage error: %v", err)
		}
	}

	// Constructing the store and the identity service writes the seed for
	// every collection that has no persisted data yet.
	st, err := store.New(backend)
	if err != nil {
		log.Fatalf("Store error: %v", err)
	}
	if _, err := services.NewAuthService(backend, cfg); err != nil {
		log.Fatalf("Auth error: %v", err)
	}

	stats := st.Stats()
	log.Printf("Seed complete: %d events, %d tickets sold, %d coupons",
		stats.TotalEvents, stats.TotalTicketsSold, len(st.Coupons()))
}
