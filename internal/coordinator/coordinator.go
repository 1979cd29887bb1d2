// Package coordinator provides the background loop that persists source usage
// statistics. It restores the last snapshot on startup and flushes the current
// counters on a jittered interval and at shutdown, so stats survive restarts
// without putting disk writes on the search path.
package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dealvoy/source-registry-server/internal/registry"
	"github.com/dealvoy/source-registry-server/internal/status"
)


// Coordinator manages the background stats persistence loop
type Coordinator interface {
	// Start restores persisted stats and begins the flush loop.
	// Blocks until the context is cancelled.
	Start(ctx context.Context) error

	// Stop gracefully stops the loop, flushing a final snapshot
	Stop() error
}

// statsCoordinator is the default implementation of Coordinator
type statsCoordinator struct {
	reg         *registry.Registry
	persistence status.StatsPersistence
	interval    time.Duration

	cancelFunc context.CancelFunc
	done       chan struct{}
}

var _ Coordinator = (*statsCoordinator)(nil)

// New creates a coordinator flushing reg's stats through persistence every
// interval (plus jitter).
func New(reg *registry.Registry, persistence status.StatsPersistence, interval time.Duration) Coordinator {
	return &statsCoordinator{
		reg:         reg,
		persistence: persistence,
		interval:    interval,
		done:        make(chan struct{}),
	}
}

// flushInterval returns the base interval with up to a quarter of random
// jitter applied either way, so multiple instances sharing storage do not
// write in lockstep.
func (c *statsCoordinator) flushInterval() time.Duration {
	span := int64(c.interval) / 2
	if span <= 0 {
		return c.interval
	}
	//nolint:gosec // G404: Non-cryptographic randomness is sufficient for flush jitter
	jitter := time.Duration(rand.Int64N(span) - span/2)
	return c.interval + jitter
}

// Start restores persisted stats and runs the flush loop until ctx is cancelled
func (c *statsCoordinator) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(ctx)
	c.cancelFunc = cancel
	defer func() {
		close(c.done)
		slog.Info("Stats coordinator shutting down")
	}()

	snapshot, err := c.persistence.LoadSnapshot(loopCtx)
	if err != nil {
		return fmt.Errorf("failed to load stats snapshot: %w", err)
	}
	if len(snapshot.Sources) > 0 {
		c.reg.RestoreStats(snapshot.Sources)
		slog.Info("Restored source stats from snapshot",
			"sources", len(snapshot.Sources),
			"saved_at", snapshot.SavedAt)
	}

	interval := c.flushInterval()
	slog.Info("Starting stats coordinator", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-loopCtx.Done():
			// Final flush so counters recorded since the last tick are kept.
			c.flush(context.Background())
			return nil
		case <-ticker.C:
			c.flush(loopCtx)
		}
	}
}

// Stop cancels the loop and waits for the final flush to complete
func (c *statsCoordinator) Stop() error {
	if c.cancelFunc == nil {
		return fmt.Errorf("coordinator not started")
	}
	c.cancelFunc()
	<-c.done
	return nil
}

// flush persists the current stats. Persistence errors are logged, never fatal;
// the next flush gets another chance.
func (c *statsCoordinator) flush(ctx context.Context) {
	snapshot := &status.Snapshot{
		SavedAt: time.Now().UTC(),
		Sources: c.reg.StatsSnapshot(),
	}

	if err := c.persistence.SaveSnapshot(ctx, snapshot); err != nil {
		slog.Error("Failed to persist stats snapshot", "error", err)
		return
	}

	slog.Debug("Persisted stats snapshot", "sources", len(snapshot.Sources))
}
