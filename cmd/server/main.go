package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ticket-marketplace-backend/internal/config"
	"ticket-marketplace-backend/internal/handlers"
	"ticket-marketplace-backend/internal/services"
	"ticket-marketplace-backend/internal/store"
	"ticket-marketplace-backend/pkg/database"
	"ticket-marketplace-backend/pkg/kv"
	"ticket-marketplace-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Initialize logger
	logger.Init(cfg.LogLevel)

	// Initialize the key-value backend
	backend, err := newBackend(cfg)
	if err != nil {
		log.Fatalf("Storage error: %v", err)
	}

	// Initialize the domain store (seeds demo data on first run)
	st, err := store.New(backend, store.WithLogger(logger.L()))
	if err != nil {
		log.Fatalf("Store error: %v", err)
	}

	// Initialize the identity service
	authSvc, err := services.NewAuthService(backend, cfg)
	if err != nil {
		log.Fatalf("Auth error: %v", err)
	}

	// Initialize handlers
	handler := handlers.NewHandler(st, authSvc, cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Ticket Marketplace API",
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Register routes
	api := app.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.L().Infof("Server starting on %s (storage: %s)", addr, cfg.Storage)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.L().Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	logger.L().Info("Server stopped gracefully")
}

func newBackend(cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage {
	case "postgres":
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			return nil, err
		}
		return kv.NewGormStore(db)
	default:
		return kv.NewFileStore(cfg.DataDir)
	}
}
