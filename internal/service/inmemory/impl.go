// Package inmemory provides the in-memory implementation of the SearchService
// interface, backed directly by a registry instance.
package inmemory

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/dealvoy/source-registry-server/internal/catalog"
	"github.com/dealvoy/source-registry-server/internal/registry"
	"github.com/dealvoy/source-registry-server/internal/service"
	"github.com/dealvoy/source-registry-server/internal/telemetry"
)

// searchSvc implements the SearchService interface
type searchSvc struct {
	reg        *registry.Registry
	cache      *gocache.Cache
	metrics    *telemetry.SearchMetrics
	defaultMax int
}

var _ service.SearchService = (*searchSvc)(nil)

// Option is a functional option for configuring the service
type Option func(*searchSvc)

// WithCacheTTL enables fan-out result caching with the given TTL. Cached
// results bypass the registry entirely, so they do not advance source stats.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *searchSvc) {
		if ttl > 0 {
			s.cache = gocache.New(ttl, 2*ttl)
		}
	}
}

// WithSearchMetrics sets the telemetry instruments for search operations
func WithSearchMetrics(m *telemetry.SearchMetrics) Option {
	return func(s *searchSvc) {
		s.metrics = m
	}
}

// WithDefaultMaxResults sets the per-source result cap used when a search does
// not specify one.
func WithDefaultMaxResults(n int) Option {
	return func(s *searchSvc) {
		if n > 0 {
			s.defaultMax = n
		}
	}
}

// New creates a new search service backed by the given registry
func New(reg *registry.Registry, opts ...Option) (service.SearchService, error) {
	if reg == nil {
		return nil, fmt.Errorf("registry is required")
	}

	s := &searchSvc{
		reg:        reg,
		defaultMax: 5,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// CheckReadiness reports whether the service can answer searches
func (s *searchSvc) CheckReadiness(_ context.Context) error {
	if len(s.reg.Names()) == 0 {
		return fmt.Errorf("no sources registered")
	}
	return nil
}

// SearchProducts fans the query out per the options. Explicit sources bypass
// the category filter; unknown explicit names are skipped silently.
func (s *searchSvc) SearchProducts(ctx context.Context, opts ...service.Option[service.SearchProductsOptions]) (map[string][]catalog.Record, error) {
	var o service.SearchProductsOptions
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(o.Query) == "" {
		return nil, service.ErrEmptyQuery
	}
	if o.MaxResultsPerSource <= 0 {
		o.MaxResultsPerSource = s.defaultMax
	}

	if cached, ok := s.cachedResults(&o); ok {
		return cached, nil
	}

	searchID := uuid.NewString()
	start := time.Now()
	var results map[string][]catalog.Record

	if len(o.Sources) > 0 {
		results = s.searchExplicit(ctx, &o, searchID)
	} else {
		slog.Info("Starting search fan-out",
			"search_id", searchID,
			"query", o.Query,
			"categories", o.Categories)
		results = s.reg.SearchAll(ctx, o.Query, o.MaxResultsPerSource, o.Categories...)
	}

	s.metrics.RecordFanout(ctx, time.Since(start), len(results))
	s.storeResults(&o, results)

	slog.Info("Search completed",
		"search_id", searchID,
		"sources_with_results", len(results),
		"duration", time.Since(start))

	return results, nil
}

// searchExplicit queries exactly the named sources, never consulting the
// category filter.
func (s *searchSvc) searchExplicit(ctx context.Context, o *service.SearchProductsOptions, searchID string) map[string][]catalog.Record {
	slog.Info("Searching explicit sources",
		"search_id", searchID,
		"query", o.Query,
		"sources", o.Sources)

	results := make(map[string][]catalog.Record)
	for _, name := range o.Sources {
		records := s.reg.Search(ctx, name, o.Query, o.MaxResultsPerSource)
		s.metrics.RecordSourceSearch(ctx, name, len(records) > 0)
		if len(records) > 0 {
			results[name] = records
		}
	}
	return results
}

// ListSources returns all registered source names in catalog order
func (s *searchSvc) ListSources(_ context.Context) ([]string, error) {
	return s.reg.Names(), nil
}

// ListSourcesByCategory returns the source names in the given category
func (s *searchSvc) ListSourcesByCategory(_ context.Context, category string) ([]string, error) {
	return s.reg.SourcesByCategory(category), nil
}

// Categories returns the distinct source categories
func (s *searchSvc) Categories(_ context.Context) ([]string, error) {
	return s.reg.Categories(), nil
}

// RegistryInfo returns the catalog summary statistics
func (s *searchSvc) RegistryInfo(_ context.Context) (*registry.RegistryStats, error) {
	stats := s.reg.Stats()
	return &stats, nil
}

// SourceInfo returns the merged descriptor and stats for one source
func (s *searchSvc) SourceInfo(_ context.Context, name string) (*registry.SourceInfo, error) {
	info, ok := s.reg.SourceInfo(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrSourceNotFound, name)
	}
	return &info, nil
}

func (s *searchSvc) cachedResults(o *service.SearchProductsOptions) (map[string][]catalog.Record, bool) {
	if s.cache == nil {
		return nil, false
	}
	if v, ok := s.cache.Get(cacheKey(o)); ok {
		return v.(map[string][]catalog.Record), true
	}
	return nil, false
}

func (s *searchSvc) storeResults(o *service.SearchProductsOptions, results map[string][]catalog.Record) {
	if s.cache == nil {
		return
	}
	s.cache.SetDefault(cacheKey(o), results)
}

// cacheKey builds a stable key from everything that affects a search's outcome
func cacheKey(o *service.SearchProductsOptions) string {
	return strings.Join([]string{
		o.Query,
		strings.Join(o.Sources, ","),
		strings.Join(o.Categories, ","),
		strconv.Itoa(o.MaxResultsPerSource),
	}, "|")
}
