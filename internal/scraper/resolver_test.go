package scraper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealvoy/source-registry-server/internal/catalog"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		desc    catalog.Descriptor
		wantErr bool
	}{
		{
			name: "static provider",
			desc: catalog.Descriptor{Name: "target", Provider: catalog.ProviderStatic},
		},
		{
			name: "http provider",
			desc: catalog.Descriptor{
				Name:     "bestbuy",
				Provider: catalog.ProviderHTTP,
				Endpoint: "https://example.com/search?q={query}",
			},
		},
		{
			name:    "unregistered provider",
			desc:    catalog.Descriptor{Name: "target", Provider: "grpc"},
			wantErr: true,
		},
		{
			name:    "http provider without endpoint",
			desc:    catalog.Descriptor{Name: "bestbuy", Provider: catalog.ProviderHTTP},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewDefaultResolver()
			s, err := r.Resolve(tt.desc)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestResolveUnknownProviderError(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	_, err := r.Resolve(catalog.Descriptor{Name: "target", Provider: "grpc"})

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "grpc", nfe.Provider)
	assert.Contains(t, nfe.Error(), "grpc")
}

func TestRegisterReplacesFactory(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("custom factory invoked")
	r := NewDefaultResolver()
	r.Register(catalog.ProviderStatic, func(_ catalog.Descriptor) (Scraper, error) {
		return nil, sentinel
	})

	_, err := r.Resolve(catalog.Descriptor{Name: "target", Provider: catalog.ProviderStatic})
	assert.ErrorIs(t, err, sentinel)
}

func TestStaticScraperSearch(t *testing.T) {
	t.Parallel()

	s, err := NewStaticScraper(catalog.Descriptor{Name: "target", Provider: catalog.ProviderStatic})
	require.NoError(t, err)

	tests := []struct {
		name       string
		query      string
		maxResults int
		wantCount  int
	}{
		{name: "normal query", query: "usb cable", maxResults: 10, wantCount: 3},
		{name: "capped by max results", query: "usb cable", maxResults: 2, wantCount: 2},
		{name: "empty query", query: "", maxResults: 10, wantCount: 0},
		{name: "whitespace query", query: "   ", maxResults: 10, wantCount: 0},
		{name: "zero max results", query: "usb cable", maxResults: 0, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, err := s.Search(context.Background(), tt.query, tt.maxResults)
			require.NoError(t, err)
			assert.Len(t, records, tt.wantCount)

			for _, rec := range records {
				assert.Equal(t, "target", rec["source"])
				assert.Contains(t, rec["title"], "target")
				assert.NotEmpty(t, rec["product_url"])
			}
		})
	}
}

func TestNewStaticScraperRequiresName(t *testing.T) {
	t.Parallel()

	_, err := NewStaticScraper(catalog.Descriptor{Provider: catalog.ProviderStatic})
	assert.Error(t, err)
}
