package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/dealvoy/source-registry-server/internal/catalog"
)

// staticScraper returns deterministic in-memory records. It stands in for
// sources without a configured endpoint and backs demos and tests, mirroring
// the mock data the desktop scrapers returned before real integrations landed.
type staticScraper struct {
	source string
}

var _ Scraper = (*staticScraper)(nil)

// staticRecordCount is how many records the static provider fabricates per query
const staticRecordCount = 3

// NewStaticScraper creates a static scraper for the descriptor
func NewStaticScraper(desc catalog.Descriptor) (Scraper, error) {
	if desc.Name == "" {
		return nil, fmt.Errorf("descriptor name is required")
	}
	return &staticScraper{source: desc.Name}, nil
}

// Search fabricates records derived from the query. An empty query returns no
// records, matching how a real storefront search behaves.
func (s *staticScraper) Search(_ context.Context, query string, maxResults int) ([]catalog.Record, error) {
	query = strings.TrimSpace(query)
	if query == "" || maxResults <= 0 {
		return nil, nil
	}

	n := staticRecordCount
	if maxResults < n {
		n = maxResults
	}

	records := make([]catalog.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, catalog.Record{
			"title":       fmt.Sprintf("%s - result %d for %q", s.source, i+1, query),
			"price":       9.99 + float64(i)*5,
			"in_stock":    true,
			"product_url": fmt.Sprintf("https://www.%s.com/search?q=%s&item=%d", s.source, query, i+1),
			"source":      s.source,
		})
	}

	return records, nil
}
