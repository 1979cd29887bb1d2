package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dealvoy/source-registry-server/internal/catalog"
	"github.com/dealvoy/source-registry-server/internal/registry"
	"github.com/dealvoy/source-registry-server/internal/scraper"
	"github.com/dealvoy/source-registry-server/internal/status"
	"github.com/dealvoy/source-registry-server/internal/status/mocks"
)

func newTestRegistry() *registry.Registry {
	cat := &catalog.Catalog{Sources: []catalog.Descriptor{
		{Name: "target", Category: "general", Provider: catalog.ProviderStatic},
		{Name: "bestbuy", Category: "electronics", Provider: catalog.ProviderStatic},
	}}
	return registry.New(cat, scraper.NewDefaultResolver(), registry.WithPacingDelay(0))
}

func TestStartRestoresSnapshotAndStopFlushes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	persistence := mocks.NewMockStatsPersistence(ctrl)

	used := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	persistence.EXPECT().LoadSnapshot(gomock.Any()).Return(&status.Snapshot{
		SavedAt: used,
		Sources: map[string]registry.SourceStats{
			"target": {TotalRequests: 4, SuccessfulRequests: 3, LastUsed: &used},
		},
	}, nil)

	flushed := make(chan *status.Snapshot, 1)
	persistence.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, snapshot *status.Snapshot) error {
			flushed <- snapshot
			return nil
		})

	reg := newTestRegistry()
	c := New(reg, persistence, time.Hour)

	started := make(chan error, 1)
	go func() {
		started <- c.Start(context.Background())
	}()

	// Wait for the restore to land before stopping.
	require.Eventually(t, func() bool {
		return reg.StatsSnapshot()["target"].TotalRequests == 4
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, c.Stop())
	require.NoError(t, <-started)

	select {
	case snapshot := <-flushed:
		assert.Equal(t, int64(4), snapshot.Sources["target"].TotalRequests)
		assert.Contains(t, snapshot.Sources, "bestbuy")
	case <-time.After(2 * time.Second):
		t.Fatal("final flush never happened")
	}
}

func TestStartFailsWhenSnapshotUnreadable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	persistence := mocks.NewMockStatsPersistence(ctrl)
	persistence.EXPECT().LoadSnapshot(gomock.Any()).Return(nil, errors.New("disk on fire"))

	c := New(newTestRegistry(), persistence, time.Hour)
	err := c.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load stats snapshot")
}

func TestPeriodicFlush(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	persistence := mocks.NewMockStatsPersistence(ctrl)
	persistence.EXPECT().LoadSnapshot(gomock.Any()).Return(&status.Snapshot{
		Sources: map[string]registry.SourceStats{},
	}, nil)

	flushes := make(chan struct{}, 16)
	persistence.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *status.Snapshot) error {
			flushes <- struct{}{}
			return nil
		}).MinTimes(1)

	// Jitter scales with the interval, so a tiny interval still ticks quickly.
	c := New(newTestRegistry(), persistence, 20*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		done <- c.Start(context.Background())
	}()

	select {
	case <-flushes:
	case <-time.After(5 * time.Second):
		t.Fatal("no periodic flush observed")
	}

	require.NoError(t, c.Stop())
	require.NoError(t, <-done)
}

func TestPersistenceErrorsAreNotFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	persistence := mocks.NewMockStatsPersistence(ctrl)
	persistence.EXPECT().LoadSnapshot(gomock.Any()).Return(&status.Snapshot{
		Sources: map[string]registry.SourceStats{},
	}, nil)
	persistence.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full")).AnyTimes()

	c := New(newTestRegistry(), persistence, time.Hour)

	done := make(chan error, 1)
	go func() {
		done <- c.Start(context.Background())
	}()

	// Give the restore a moment, then stop; the failing final flush must not
	// surface as a Start error.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, c.Stop())
	require.NoError(t, <-done)
}

func TestStopBeforeStart(t *testing.T) {
	t.Parallel()

	c := New(newTestRegistry(), mocks.NewMockStatsPersistence(gomock.NewController(t)), time.Hour)
	assert.Error(t, c.Stop())
}
