package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealvoy/source-registry-server/internal/httpclient"
)

func TestAllowedByRobots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		agent   string
		want    bool
	}{
		{
			name:    "empty file allows everything",
			content: "",
			agent:   "dealvoy-registry",
			want:    true,
		},
		{
			name:    "wildcard disallow all",
			content: "User-agent: *\nDisallow: /",
			agent:   "dealvoy-registry",
			want:    false,
		},
		{
			name:    "matching agent disallow all",
			content: "User-agent: dealvoy-registry\nDisallow: /",
			agent:   "dealvoy-registry",
			want:    false,
		},
		{
			name:    "agent match is case insensitive",
			content: "User-Agent: Dealvoy-Registry\nDisallow: /",
			agent:   "dealvoy-registry",
			want:    false,
		},
		{
			name:    "other agent disallow does not apply",
			content: "User-agent: badbot\nDisallow: /",
			agent:   "dealvoy-registry",
			want:    true,
		},
		{
			name:    "partial path disallow allows scraping",
			content: "User-agent: *\nDisallow: /checkout",
			agent:   "dealvoy-registry",
			want:    true,
		},
		{
			name:    "later specific block applies",
			content: "User-agent: *\nDisallow: /cart\n\nUser-agent: dealvoy-registry\nDisallow: /",
			agent:   "dealvoy-registry",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, allowedByRobots(tt.content, tt.agent))
		})
	}
}

func TestCanFetch(t *testing.T) {
	t.Parallel()

	t.Run("disallowed host", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/robots.txt", r.URL.Path)
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /"))
		}))
		defer server.Close()

		checker := newRobotsChecker(httpclient.NewDefaultClient(0))
		assert.False(t, checker.CanFetch(context.Background(), server.URL+"/search", "dealvoy-registry"))
	})

	t.Run("missing robots file assumes permission", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := newRobotsChecker(httpclient.NewDefaultClient(0))
		assert.True(t, checker.CanFetch(context.Background(), server.URL+"/search", "dealvoy-registry"))
	})

	t.Run("unreachable host assumes permission", func(t *testing.T) {
		t.Parallel()

		checker := newRobotsChecker(httpclient.NewDefaultClient(0))
		assert.True(t, checker.CanFetch(context.Background(), "http://127.0.0.1:1/search", "dealvoy-registry"))
	})
}
