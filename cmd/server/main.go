package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/skulens/backend/config"
	httpDelivery "github.com/skulens/backend/internal/delivery/http"
	"github.com/skulens/backend/internal/infrastructure/cache"
	"github.com/skulens/backend/internal/infrastructure/gemini"
	"github.com/skulens/backend/internal/infrastructure/productdb"
	"github.com/skulens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Infof("Starting SKULens Backend v1.0.0")
	log.Infof("Environment: %s", cfg.Server.Environment)
	log.Infof("Port: %s", cfg.Server.Port)
	log.Infof("Lookup cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	lookupCache := cache.NewMemoryCache()

	extractionClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.Gemini.Timeout)
	storeClient := productdb.NewClient(cfg.ProductDB.BaseURL, cfg.ProductDB.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		log.SetLevel(log.DebugLevel)
		extractionClient.SetDebug(true)
		storeClient.SetDebug(true)
		log.Infof("Outbound client debug mode enabled")
	}

	log.Infof("Vision model: %s (key: %s...)", cfg.Gemini.Model, cfg.Gemini.APIKey[:min(8, len(cfg.Gemini.APIKey))])
	log.Infof("Product database: %s", cfg.ProductDB.BaseURL)

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(
		extractionClient,
		storeClient,
		lookupCache,
		usecase.CatalogServiceConfig{
			CacheTTL: cfg.Cache.TTL,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, cfg.Upload.MaxFileSize)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}
