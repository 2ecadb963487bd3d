package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unihub/campus-events-backend/internal/config"
	"github.com/unihub/campus-events-backend/internal/feed"
)

// Listener holds a dedicated connection on LISTEN and forwards decoded
// change payloads to a dispatch function. On connection loss it
// reconnects with exponential backoff and emits a synthetic full-resync
// signal, since notifications sent while disconnected are lost.
type Listener struct {
	pool     *pgxpool.Pool
	cfg      config.FeedConfig
	logger   *slog.Logger
	dispatch func(feed.Change)
	resync   func()
}

// NewListener creates a Listener. dispatch receives every decoded
// change; resync is called after each (re)connect and may be nil.
func NewListener(pool *pgxpool.Pool, cfg config.FeedConfig, logger *slog.Logger, dispatch func(feed.Change), resync func()) *Listener {
	return &Listener{
		pool:     pool,
		cfg:      cfg,
		logger:   logger.With("component", "postgres.listener", "channel", cfg.Channel),
		dispatch: dispatch,
		resync:   resync,
	}
}

// Run blocks until ctx is done, maintaining the LISTEN loop.
func (l *Listener) Run(ctx context.Context) error {
	delay := l.cfg.ReconnectMinDelay

	for {
		err := l.listen(ctx, &delay)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		l.logger.Warn("listen connection lost, reconnecting", "error", err, "delay", delay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > l.cfg.ReconnectMaxDelay {
			delay = l.cfg.ReconnectMaxDelay
		}
	}
}

// listen acquires a dedicated connection, subscribes to the channel and
// consumes notifications until the connection or context fails.
func (l *Listener) listen(ctx context.Context, delay *time.Duration) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	defer conn.Release()

	listenSQL := "LISTEN " + pgx.Identifier{l.cfg.Channel}.Sanitize()
	if _, err := conn.Exec(ctx, listenSQL); err != nil {
		return fmt.Errorf("listen on %s: %w", l.cfg.Channel, err)
	}

	l.logger.Info("listening for entity changes")
	*delay = l.cfg.ReconnectMinDelay
	if l.resync != nil {
		l.resync()
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		change, err := feed.DecodeChange(n.Payload)
		if err != nil {
			l.logger.Warn("skipping malformed change payload", "error", err, "payload", n.Payload)
			continue
		}
		l.dispatch(change)
	}
}
