package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"revboard/internal/amqp"
	"revboard/internal/config"
	"revboard/internal/export/gsheet"
	apphttp "revboard/internal/http"
	"revboard/internal/services"
	"revboard/internal/storage"
	"revboard/internal/store"
	"revboard/internal/store/memory"
	"revboard/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	var backend store.Backend
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		backend = repo
		logger.Info("Initialized SQLite backend", "path", cfg.SQLiteDBPath)
	default:
		// Seed from ./data fixtures if present, generated data otherwise.
		backend = memory.NewFromFiles("data")
		logger.Info("Initialized memory backend")
	}

	// Google Sheets export target (optional)
	var exporter apphttp.Exporter
	if cfg.ExportEnabled() {
		cli, err := gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		exporter = cli
		logger.Info("Google Sheets export enabled", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		logger.Info("Google Sheets export disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	srv := apphttp.NewServer(apphttp.Config{
		Addr:      ":" + cfg.Port,
		CacheTTL:  cfg.CacheTTL,
		CacheSize: cfg.CacheSize,
	}, backend, backend, backend, exporter)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// In-process ingest consumer (optional). New transactions drop the
	// response caches so the next read sees them.
	if cfg.IngestEnabled() {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()

		svc := services.NewIngestService(backend)
		svc.OnIngest = srv.InvalidateCaches
		ingestWorker := worker.NewIngestWorker(svc)

		go func() {
			if err := ingestWorker.Run(ctx, amqpClient); err != nil && err != context.Canceled {
				logger.Error("Transaction consumption failed", "error", err)
			}
		}()
		logger.Info("AMQP ingest enabled", "queue", cfg.AMQPQueue)
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting revboard server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
