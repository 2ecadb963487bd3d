// Command reconcile rebuilds every event roster from the registrations
// table. Rosters are updated asynchronously in normal operation, so a
// crash between the registration insert and the roster append can leave
// them stale; this command restores consistency. It is intended to be
// invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/unihub/campus-events-backend/internal/adapter/postgres"
	"github.com/unihub/campus-events-backend/internal/adapter/postgres/event"
	"github.com/unihub/campus-events-backend/internal/app"
	"github.com/unihub/campus-events-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	eventRepo := event.New(pool)

	ids, err := eventRepo.ListIDs(ctx)
	if err != nil {
		logger.Error("list events", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var failed int
	for _, id := range ids {
		if err := eventRepo.RecomputeRoster(ctx, id); err != nil {
			logger.Error("recompute roster",
				slog.String("event_id", id.String()),
				slog.String("error", err.Error()),
			)
			failed++
		}
	}

	if failed > 0 {
		logger.Error("reconcile finished with errors",
			slog.Int("events", len(ids)),
			slog.Int("failed", failed),
		)
		os.Exit(1)
	}

	logger.Info("reconcile completed", slog.Int("events", len(ids)))
}
