package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid catalog",
			data: `
sources:
  - name: target
    category: general
    provider: static
    description: Target retail search
  - name: bestbuy
    category: electronics
    provider: http
    endpoint: https://example.com/search?q={query}
    recordPath: products
`,
		},
		{
			name:    "empty data",
			data:    "",
			wantErr: "catalog data cannot be empty",
		},
		{
			name: "missing name",
			data: `
sources:
  - category: general
    provider: static
`,
			wantErr: "catalog validation failed",
		},
		{
			name: "uppercase name rejected",
			data: `
sources:
  - name: Target
    category: general
    provider: static
`,
			wantErr: "catalog validation failed",
		},
		{
			name: "sources must be a list",
			data: `
sources:
  name: target
`,
			wantErr: "catalog validation failed",
		},
		{
			name:    "not yaml",
			data:    "{{{{",
			wantErr: "failed to parse catalog YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Parse([]byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, c.Sources, 2)
			assert.Equal(t, "target", c.Sources[0].Name)
			assert.Equal(t, ProviderStatic, c.Sources[0].Provider)
			assert.Equal(t, "https://example.com/search?q={query}", c.Sources[1].Endpoint)
			assert.Equal(t, "products", c.Sources[1].RecordPath)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns default catalog", func(t *testing.T) {
		t.Parallel()

		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default().Sources, c.Sources)
	})

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		data := `
sources:
  - name: target
    category: general
    provider: static
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0600))

		c, err := Load(path)
		require.NoError(t, err)
		require.Len(t, c.Sources, 1)
		assert.Equal(t, "target", c.Sources[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})

	t.Run("invalid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sources: 12\n"), 0600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid catalog file")
	})
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := Default()
	require.NotEmpty(t, c.Sources)

	seen := make(map[string]struct{}, len(c.Sources))
	for _, d := range c.Sources {
		_, dup := seen[d.Name]
		assert.False(t, dup, "duplicate source %s", d.Name)
		seen[d.Name] = struct{}{}

		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Category)
		assert.Contains(t, []string{ProviderStatic, ProviderHTTP}, d.Provider)
	}
}
