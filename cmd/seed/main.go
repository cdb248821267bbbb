// Command seed fills a SQLite database with deterministic demo data so
// the dashboard has something to show on a fresh install.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"revboard/internal/amqp"
	"revboard/internal/config"
	"revboard/internal/storage"
	"revboard/internal/store/memory"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		seed    = flag.Int64("seed", 1, "random seed for the generated data")
		count   = flag.Int("count", 120, "number of transactions to generate")
		publish = flag.Bool("publish", false, "publish transactions as queue events instead of writing them directly")
	)
	flag.Parse()

	cfg := config.Load()

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	src := memory.NewSeeded(*seed, *count, time.Now())
	ctx := context.Background()

	txs, err := src.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to generate transactions", "error", err)
		os.Exit(1)
	}

	var inserted, skipped int
	if *publish {
		// Drive the full ingest path: events through the broker, the
		// worker does the writing.
		if !cfg.IngestEnabled() {
			logger.Error("AMQP_URL is required with -publish")
			os.Exit(1)
		}
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()

		for _, t := range txs {
			if err := amqpClient.PublishTransaction(ctx, t); err != nil {
				logger.Error("Failed to publish transaction", "error", err, "payment_reference", t.PaymentReference)
				os.Exit(1)
			}
			inserted++
		}
	} else {
		for _, t := range txs {
			ok, err := repo.InsertTransaction(ctx, t)
			if err != nil {
				logger.Error("Failed to insert transaction", "error", err, "payment_reference", t.PaymentReference)
				os.Exit(1)
			}
			if ok {
				inserted++
			} else {
				skipped++
			}
		}
	}

	wallet, _ := src.Wallet(ctx)
	if err := repo.PutWallet(ctx, wallet); err != nil {
		logger.Error("Failed to write wallet snapshot", "error", err)
		os.Exit(1)
	}
	user, _ := src.User(ctx)
	if err := repo.PutUser(ctx, user); err != nil {
		logger.Error("Failed to write user snapshot", "error", err)
		os.Exit(1)
	}

	logger.Info("Seed complete", "path", cfg.SQLiteDBPath, "published", *publish, "inserted", inserted, "skipped", skipped)
}
