// Package config provides configuration loading and management for the
// registry server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dealvoy/source-registry-server/internal/telemetry"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "DEALVOY"

const (
	// DefaultAddress is the default listen address for the API server
	DefaultAddress = ":8080"

	// DefaultDataDir is where stats snapshots are persisted
	DefaultDataDir = "./data"

	// DefaultMaxResultsPerSource caps records returned per source per search
	DefaultMaxResultsPerSource = 5

	// defaultPacingDelay is the default wait between source invocations
	defaultPacingDelay = 1 * time.Second

	// defaultSourceTimeout is the default per-invocation timeout
	defaultSourceTimeout = 30 * time.Second

	// defaultSnapshotInterval is how often stats snapshots are flushed
	defaultSnapshotInterval = 5 * time.Minute
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		// Validate the path to prevent path traversal attacks
		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// Address is the listen address for the API server
	Address string `yaml:"address,omitempty"`

	// DataDir is the directory for persisted state (stats snapshots)
	DataDir string `yaml:"dataDir,omitempty"`

	// CatalogPath optionally points at a catalog YAML file; when empty the
	// embedded seed catalog is used
	CatalogPath string `yaml:"catalogPath,omitempty"`

	// Search configures fan-out behavior
	Search SearchConfig `yaml:"search,omitempty"`

	// SnapshotInterval is how often source stats are flushed to disk
	// (a duration string, e.g. "5m")
	SnapshotInterval string `yaml:"snapshotInterval,omitempty"`

	// Telemetry configures OpenTelemetry metrics
	Telemetry *telemetry.Config `yaml:"telemetry,omitempty"`
}

// SearchConfig configures the search fan-out
type SearchConfig struct {
	// PacingDelay is the wait between consecutive source invocations
	// (a duration string, e.g. "1s")
	PacingDelay string `yaml:"pacingDelay,omitempty"`

	// SourceTimeout bounds a single source invocation (a duration string)
	SourceTimeout string `yaml:"sourceTimeout,omitempty"`

	// MaxResultsPerSource is the default per-source result cap
	MaxResultsPerSource int `yaml:"maxResultsPerSource,omitempty"`

	// CacheTTL enables result caching when set to a positive duration string.
	// Cached fan-outs do not touch source stats.
	CacheTTL string `yaml:"cacheTTL,omitempty"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	return &Config{
		Address: DefaultAddress,
		DataDir: DefaultDataDir,
		Search: SearchConfig{
			MaxResultsPerSource: DefaultMaxResultsPerSource,
		},
	}
}

// Load builds a configuration from the given options. Without options it
// returns the defaults.
func Load(opts ...Option) (*Config, error) {
	lc := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(lc); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	if lc.path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(lc.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", lc.path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills in zero values left by a partial config file
func (c *Config) applyDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.Search.MaxResultsPerSource == 0 {
		c.Search.MaxResultsPerSource = DefaultMaxResultsPerSource
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address cannot be empty")
	}
	if c.Search.MaxResultsPerSource < 0 {
		return fmt.Errorf("search.maxResultsPerSource cannot be negative")
	}

	for field, value := range map[string]string{
		"search.pacingDelay":   c.Search.PacingDelay,
		"search.sourceTimeout": c.Search.SourceTimeout,
		"search.cacheTTL":      c.Search.CacheTTL,
		"snapshotInterval":     c.SnapshotInterval,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", field, value, err)
		}
	}

	if c.Telemetry != nil {
		if err := c.Telemetry.Validate(); err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
	}

	return nil
}

// GetPacingDelay returns the configured pacing delay or the default
func (c *Config) GetPacingDelay() time.Duration {
	return parseDurationOr(c.Search.PacingDelay, defaultPacingDelay)
}

// GetSourceTimeout returns the configured per-source timeout or the default
func (c *Config) GetSourceTimeout() time.Duration {
	return parseDurationOr(c.Search.SourceTimeout, defaultSourceTimeout)
}

// GetSnapshotInterval returns the configured snapshot interval or the default
func (c *Config) GetSnapshotInterval() time.Duration {
	return parseDurationOr(c.SnapshotInterval, defaultSnapshotInterval)
}

// GetCacheTTL returns the configured cache TTL; zero means caching is disabled
func (c *Config) GetCacheTTL() time.Duration {
	return parseDurationOr(c.Search.CacheTTL, 0)
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
