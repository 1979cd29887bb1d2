// Package status provides persistence for source usage statistics so counters
// survive process restarts.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dealvoy/source-registry-server/internal/registry"
)

//go:generate mockgen -destination=mocks/mock_stats_persistence.go -package=mocks -source=persistence.go StatsPersistence

const (
	// StatsFileName is the name of the stats snapshot file
	StatsFileName = "stats.json"
)

// Snapshot is the persisted form of the registry's per-source statistics
type Snapshot struct {
	// SavedAt is when the snapshot was written
	SavedAt time.Time `json:"saved_at"`

	// Sources maps source name to its statistics
	Sources map[string]registry.SourceStats `json:"sources"`
}

// StatsPersistence defines the interface for stats snapshot persistence
//
//nolint:revive // This name is fine
type StatsPersistence interface {
	// SaveSnapshot saves a stats snapshot to persistent storage
	SaveSnapshot(ctx context.Context, snapshot *Snapshot) error

	// LoadSnapshot loads the stats snapshot from persistent storage.
	// Returns an empty snapshot if none exists yet (first run).
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
}

// fileStatsPersistence implements StatsPersistence using the local filesystem
type fileStatsPersistence struct {
	basePath string
}

var _ StatsPersistence = (*fileStatsPersistence)(nil)

// NewFileStatsPersistence creates a file-based stats persistence rooted at
// basePath.
func NewFileStatsPersistence(basePath string) StatsPersistence {
	return &fileStatsPersistence{
		basePath: basePath,
	}
}

// SaveSnapshot writes the snapshot to a JSON file, replacing it atomically so
// a crash mid-write never leaves a truncated file behind.
func (f *fileStatsPersistence) SaveSnapshot(_ context.Context, snapshot *Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot cannot be nil")
	}

	if err := os.MkdirAll(f.basePath, 0750); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	// Pretty-printed for operator readability
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats snapshot: %w", err)
	}

	filePath := filepath.Join(f.basePath, StatsFileName)
	tmpPath := filePath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write stats snapshot: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("failed to replace stats snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot reads the snapshot file. A missing file is a first run and
// yields an empty snapshot, not an error.
func (f *fileStatsPersistence) LoadSnapshot(_ context.Context) (*Snapshot, error) {
	filePath := filepath.Join(f.basePath, StatsFileName)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Snapshot{Sources: make(map[string]registry.SourceStats)}, nil
		}
		return nil, fmt.Errorf("failed to read stats snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse stats snapshot: %w", err)
	}

	if snapshot.Sources == nil {
		snapshot.Sources = make(map[string]registry.SourceStats)
	}

	return &snapshot, nil
}
