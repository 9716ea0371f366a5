package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cochera-backend/config"
	"cochera-backend/internal/api"
	"cochera-backend/internal/db"
	"cochera-backend/internal/store"
	"cochera-backend/internal/tariff"
)

func main() {
	logger := log.New(os.Stdout, "cochera-backend ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")

	var cfg *config.Config
	var err error
	if configPath == "" {
		logger.Println("CONFIG_PATH not set, using built-in defaults")
		cfg = config.Default()
	} else {
		cfg, err = config.Load(configPath)
		if err != nil {
			logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
		}
		logger.Printf("configuration loaded successfully from %s", configPath)
	}

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	appStore := store.NewGormStore(gormDB, cfg.Location())
	logger.Println("data store initialized")

	catalog := tariff.NewCatalog(cfg.Tariffs)
	logger.Printf("rate catalog loaded with %d vehicle classes", len(catalog.Classes()))

	router := api.NewRouter(cfg, appStore, catalog)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
