package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, DefaultMaxResultsPerSource, cfg.Search.MaxResultsPerSource)
	assert.Nil(t, cfg.Telemetry)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
address: ":9090"
dataDir: /var/lib/dealvoy
catalogPath: /etc/dealvoy/catalog.yaml
snapshotInterval: 2m
search:
  pacingDelay: 250ms
  sourceTimeout: 10s
  maxResultsPerSource: 8
  cacheTTL: 30s
telemetry:
  enabled: true
  serviceName: dealvoy-registry
`)

	cfg, err := Load(WithConfigPath(path))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "/var/lib/dealvoy", cfg.DataDir)
	assert.Equal(t, "/etc/dealvoy/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, 8, cfg.Search.MaxResultsPerSource)
	assert.Equal(t, 250*time.Millisecond, cfg.GetPacingDelay())
	assert.Equal(t, 10*time.Second, cfg.GetSourceTimeout())
	assert.Equal(t, 2*time.Minute, cfg.GetSnapshotInterval())
	assert.Equal(t, 30*time.Second, cfg.GetCacheTTL())
	require.NotNil(t, cfg.Telemetry)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "address: \":9999\"\n")

	cfg, err := Load(WithConfigPath(path))
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Address)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultMaxResultsPerSource, cfg.Search.MaxResultsPerSource)
	assert.Equal(t, 1*time.Second, cfg.GetPacingDelay())
	assert.Equal(t, 30*time.Second, cfg.GetSourceTimeout())
	assert.Equal(t, 5*time.Minute, cfg.GetSnapshotInterval())
	assert.Zero(t, cfg.GetCacheTTL())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		_, err := Load(WithConfigPath(""))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(WithConfigPath(filepath.Join(t.TempDir(), "nope.yaml")))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "address: [:::\n")
		_, err := Load(WithConfigPath(path))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "empty address",
			mutate:  func(c *Config) { c.Address = "" },
			wantErr: "address cannot be empty",
		},
		{
			name:    "negative max results",
			mutate:  func(c *Config) { c.Search.MaxResultsPerSource = -1 },
			wantErr: "maxResultsPerSource",
		},
		{
			name:    "bad pacing delay",
			mutate:  func(c *Config) { c.Search.PacingDelay = "fast" },
			wantErr: "search.pacingDelay",
		},
		{
			name:    "bad snapshot interval",
			mutate:  func(c *Config) { c.SnapshotInterval = "sometimes" },
			wantErr: "snapshotInterval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDurationGettersIgnoreUnparsableValues(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Search.PacingDelay = "garbage"
	cfg.SnapshotInterval = "garbage"

	assert.Equal(t, 1*time.Second, cfg.GetPacingDelay())
	assert.Equal(t, 5*time.Minute, cfg.GetSnapshotInterval())
}
