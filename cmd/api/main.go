package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"crisis-supply-api-server/config"
	"crisis-supply-api-server/internal/api/routes"
	"crisis-supply-api-server/internal/database"
	"crisis-supply-api-server/internal/request"
	"crisis-supply-api-server/internal/s3"
	"crisis-supply-api-server/internal/socket"
	"crisis-supply-api-server/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load configuration (.env is optional)
	godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 2. Connect MongoDB and seed the static data
	db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := database.SeedUsers(db); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	if err := database.SeedWarehouses(db); err != nil {
		log.Fatalf("Failed to seed warehouses: %v", err)
	}
	if err := database.SeedInventory(db); err != nil {
		log.Fatalf("Failed to seed inventory: %v", err)
	}

	// 3. WebSocket hub for dashboard notifications
	wsHub := socket.NewHub()

	// 4. Request store with the configured persistence backend
	var persist store.Persistence
	switch cfg.Storage.Backend {
	case "mongo":
		persist = &store.MongoStore{Collection: db.Collection("app_state"), Key: cfg.Storage.Key}
	default:
		if dir := filepath.Dir(cfg.Storage.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatalf("Failed to create storage directory: %v", err)
			}
		}
		persist = &store.FileStore{Path: cfg.Storage.File}
	}
	requestStore := store.New(persist, request.NewSequence(), wsHub)
	requestStore.Load()

	// 5. Optional S3 uploader for archive exports
	var s3Uploader *s3.Uploader
	if cfg.S3.Bucket != "" {
		s3Uploader, err = s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("Failed to create S3 uploader: %v", err)
		}
	}

	tokenTTL, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		log.Printf("Invalid jwt.expiration %q, falling back to 24h", cfg.JWT.Expiration)
		tokenTTL = 24 * time.Hour
	}

	// 6. Router and server
	router := routes.SetupRouter(cfg, db, requestStore, s3Uploader, wsHub, tokenTTL)

	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
