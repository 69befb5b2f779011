// Command cleanup enforces location history retention: samples older than
// MONITOR_LOCATION_RETENTION are deleted in one statement. Run it from cron;
// it exits non-zero when the database is unreachable or the delete fails.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/location"
	"github.com/heartmarshall/carecompanion-backend/internal/app"
	"github.com/heartmarshall/carecompanion-backend/internal/config"
)

const runTimeout = 5 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "cleanup:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log).With(slog.String("job", "location_retention"))

	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	threshold := time.Now().UTC().Add(-cfg.Monitor.LocationRetention)
	start := time.Now()

	deleted, err := location.New(pool).DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.ErrorContext(ctx, "retention failed",
			slog.Time("threshold", threshold),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("delete location samples: %w", err)
	}

	logger.InfoContext(ctx, "retention completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}
