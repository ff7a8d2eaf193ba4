package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/Clara4555/ROOFTY/api"
	"github.com/Clara4555/ROOFTY/internal/config"
	"github.com/Clara4555/ROOFTY/internal/db"
	"github.com/Clara4555/ROOFTY/internal/mail"
	"github.com/Clara4555/ROOFTY/internal/repository/memory"
	"github.com/Clara4555/ROOFTY/internal/repository/sqlite"
	"github.com/Clara4555/ROOFTY/internal/schema"
	"github.com/Clara4555/ROOFTY/internal/seed"
	"github.com/Clara4555/ROOFTY/pkg/repository"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	logger.Info("starting roofty server", slog.String("version", version), slog.String("buildTime", buildTime))

	ctx := context.Background()

	var (
		props   repository.PropertyRepo
		tests   repository.TestimonialRepo
		cleanup func() error
	)
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		conn, err := db.New(ctx, cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open DB: %v", err)
		}
		repo := sqlite.New(conn, logger)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		props, tests, cleanup = repo, repo, conn.Close
	default:
		store := memory.NewStore()
		if cfg.SeedFixtures {
			if err := seed.Apply(ctx, store, store); err != nil {
				log.Fatalf("Failed to seed fixtures: %v", err)
			}
		}
		props, tests, cleanup = store, store, func() error { return nil }
	}

	schemas, err := schema.New()
	if err != nil {
		log.Fatalf("Failed to compile write schemas: %v", err)
	}
	mailer := mail.NewLogMailer(logger)

	handler := api.SetupRoutes(version, buildTime, props, tests, schemas, mailer)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", slog.String("addr", cfg.Addr), slog.String("storage", cfg.StorageDriver))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := cleanup(); err != nil {
		logger.Error("error closing storage", slog.Any("err", err))
	}

	logger.Info("server exited")
}
