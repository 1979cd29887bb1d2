package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/cenkalti/backoff/v5"
	"github.com/tidwall/gjson"

	"github.com/dealvoy/source-registry-server/internal/catalog"
	"github.com/dealvoy/source-registry-server/internal/httpclient"
)

const (
	// scraperUserAgent is the agent name checked against robots.txt rules
	scraperUserAgent = "dealvoy-registry"

	// maxFetchAttempts bounds retries for transient upstream failures
	maxFetchAttempts = 3
)

// httpScraper is the generic HTTP search provider. It fetches the descriptor's
// endpoint template and extracts records from the JSON response via a gjson
// path.
type httpScraper struct {
	source     string
	endpoint   string
	recordPath string
	client     httpclient.Client
	robots     *robotsChecker

	complianceOnce sync.Once
	allowed        bool
}

var _ Scraper = (*httpScraper)(nil)

// NewHTTPScraper creates an HTTP scraper for the descriptor
func NewHTTPScraper(desc catalog.Descriptor) (Scraper, error) {
	if desc.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required for the %s provider", catalog.ProviderHTTP)
	}
	if _, err := url.Parse(desc.Endpoint); err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", desc.Endpoint, err)
	}

	client := httpclient.NewDefaultClient(0)

	return &httpScraper{
		source:     desc.Name,
		endpoint:   desc.Endpoint,
		recordPath: desc.RecordPath,
		client:     client,
		robots:     newRobotsChecker(client),
	}, nil
}

// Search queries the source endpoint and returns up to maxResults records
func (s *httpScraper) Search(ctx context.Context, query string, maxResults int) ([]catalog.Record, error) {
	if maxResults <= 0 {
		return nil, nil
	}

	// The robots.txt verdict for a host does not change per query.
	s.complianceOnce.Do(func() {
		s.allowed = s.robots.CanFetch(ctx, s.endpoint, scraperUserAgent)
	})
	if !s.allowed {
		return nil, fmt.Errorf("scraping %s is disallowed by robots.txt", s.source)
	}

	searchURL := s.buildURL(query, maxResults)

	data, err := backoff.Retry(ctx, func() ([]byte, error) {
		body, err := s.client.Get(ctx, searchURL)
		if err != nil {
			var httpErr *httpclient.HTTPError
			if errors.As(err, &httpErr) && httpErr.StatusCode >= 400 && httpErr.StatusCode < 500 {
				// Client errors will not heal on retry.
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		return body, nil
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(maxFetchAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch from %s failed: %w", s.source, err)
	}

	records := s.extractRecords(data)
	if len(records) > maxResults {
		records = records[:maxResults]
	}

	slog.Debug("HTTP scraper search completed",
		"source", s.source,
		"query", query,
		"records", len(records))

	return records, nil
}

// buildURL substitutes the query and limit placeholders in the endpoint template
func (s *httpScraper) buildURL(query string, maxResults int) string {
	u := strings.ReplaceAll(s.endpoint, "{query}", url.QueryEscape(query))
	return strings.ReplaceAll(u, "{limit}", strconv.Itoa(maxResults))
}

// extractRecords pulls the record array out of a JSON response body
func (s *httpScraper) extractRecords(data []byte) []catalog.Record {
	var result gjson.Result
	if s.recordPath == "" {
		result = gjson.ParseBytes(data)
	} else {
		result = gjson.GetBytes(data, s.recordPath)
	}

	if !result.Exists() || !result.IsArray() {
		return nil
	}

	var records []catalog.Record
	for _, item := range result.Array() {
		if obj, ok := item.Value().(map[string]any); ok {
			records = append(records, catalog.Record(obj))
			continue
		}
		// Non-object entries are still surfaced; callers treat records as opaque.
		records = append(records, catalog.Record{"value": item.Value()})
	}

	return records
}
