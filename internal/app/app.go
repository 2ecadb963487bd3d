package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/unihub/campus-events-backend/internal/adapter/postgres"
	eventrepo "github.com/unihub/campus-events-backend/internal/adapter/postgres/event"
	notificationrepo "github.com/unihub/campus-events-backend/internal/adapter/postgres/notification"
	registrationrepo "github.com/unihub/campus-events-backend/internal/adapter/postgres/registration"
	userrepo "github.com/unihub/campus-events-backend/internal/adapter/postgres/user"
	"github.com/unihub/campus-events-backend/internal/config"
	"github.com/unihub/campus-events-backend/internal/feed"
	eventsvc "github.com/unihub/campus-events-backend/internal/service/event"
	notificationsvc "github.com/unihub/campus-events-backend/internal/service/notification"
	registrationsvc "github.com/unihub/campus-events-backend/internal/service/registration"
	scoringsvc "github.com/unihub/campus-events-backend/internal/service/scoring"
	"github.com/unihub/campus-events-backend/internal/transport/rest"
)

// feedTables are the relations whose triggers emit change signals.
var feedTables = []string{"events", "registrations", "notifications"}

// Run is the application entry point. It loads configuration, wires the
// storage adapters, services, change-feed listener and HTTP transport,
// then serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	events := eventrepo.New(pool)
	registrations := registrationrepo.New(pool)
	notifications := notificationrepo.New(pool)
	users := userrepo.New(pool)

	hub := feed.NewHub(logger)
	defer hub.Close()

	// After a (re)connect any notification sent while disconnected is
	// gone, so nudge every subscriber into a full refetch.
	listener := postgres.NewListener(pool, cfg.Feed, logger, hub.Dispatch, func() {
		for _, table := range feedTables {
			hub.Dispatch(feed.Change{Table: table, Op: feed.OpUpdate})
		}
	})

	handlers := rest.Handlers{
		Health:        rest.NewHealthHandler(pool, BuildVersion()),
		Events:        rest.NewEventHandler(eventsvc.NewService(logger, events, users), logger),
		Registrations: rest.NewRegistrationHandler(registrationsvc.NewService(logger, events, registrations), logger),
		Scoring:       rest.NewScoringHandler(scoringsvc.NewService(logger, cfg.Recommend, events, registrations), logger),
		Notifications: rest.NewNotificationHandler(notificationsvc.NewService(logger, notifications, events), logger),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      rest.NewRouter(handlers, logger, cfg.CORS),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 2)

	go func() {
		errCh <- listener.Run(ctx)
	}()

	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}

	logger.Info("shutdown complete")
	return nil
}
