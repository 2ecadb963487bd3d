package feed

import (
	"context"
	"log/slog"
	"sync"
)

// View maintains an always-available snapshot of a query result and
// refreshes it whenever a matching change signal arrives. Reconciliation
// is a full refetch: the view never patches its snapshot from a Change.
//
// View is the embedding surface for in-process consumers that need a
// live result set (dashboards, caches, future push transports). The
// request/response REST handlers query the repositories directly and do
// not hold views.
type View[T any] struct {
	hub     *Hub
	scope   Scope
	refetch func(ctx context.Context) (T, error)
	logger  *slog.Logger

	mu       sync.RWMutex
	snapshot T
	loaded   bool

	cancel func()
	ch     <-chan Change
}

// NewView creates a view over refetch. Call Refresh once to prime the
// snapshot, then Run to keep it current.
func NewView[T any](hub *Hub, scope Scope, refetch func(ctx context.Context) (T, error), logger *slog.Logger) *View[T] {
	ch, cancel := hub.Subscribe(scope, 8)
	return &View[T]{
		hub:     hub,
		scope:   scope,
		refetch: refetch,
		logger:  logger.With("component", "feed.view", "table", scope.Table),
		cancel:  cancel,
		ch:      ch,
	}
}

// Refresh refetches the backing query and swaps the snapshot. On error
// the previous snapshot is kept.
func (v *View[T]) Refresh(ctx context.Context) error {
	next, err := v.refetch(ctx)
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.snapshot = next
	v.loaded = true
	v.mu.Unlock()
	return nil
}

// Snapshot returns the current snapshot and whether it has ever been
// loaded successfully.
func (v *View[T]) Snapshot() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snapshot, v.loaded
}

// Run blocks, refreshing the snapshot on every change signal, until ctx
// is done or the subscription is closed. A refetch failure keeps the
// stale snapshot and is retried on the next signal.
func (v *View[T]) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-v.ch:
			if !ok {
				return
			}
			if err := v.Refresh(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				v.logger.Warn("view refresh failed, keeping stale snapshot", "error", err)
			}
		}
	}
}

// Close cancels the underlying subscription.
func (v *View[T]) Close() {
	v.cancel()
}
