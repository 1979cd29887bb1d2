// Package registry implements the source registry: a catalog of named retail
// sources, resolution of each source to an invocable scraper, serialized
// fan-out searches with per-source failure isolation, and usage statistics.
package registry

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/dealvoy/source-registry-server/internal/catalog"
	"github.com/dealvoy/source-registry-server/internal/scraper"
)

const (
	// defaultPacingDelay is the wait between consecutive source invocations
	// during fan-out. Sources are independent external endpoints; the delay
	// keeps an aggregated search from hammering all of them back to back.
	defaultPacingDelay = 1 * time.Second

	// defaultSourceTimeout bounds a single scraper invocation so one
	// unresponsive source cannot stall an entire fan-out.
	defaultSourceTimeout = 30 * time.Second
)

// Registry holds the source catalog and per-source statistics. The catalog is
// immutable after construction; stats are the only mutable state and are
// guarded by statsMu.
type Registry struct {
	descriptors map[string]catalog.Descriptor
	order       []string
	resolver    scraper.Resolver

	statsMu sync.RWMutex
	stats   map[string]*SourceStats

	pacingDelay   time.Duration
	sourceTimeout time.Duration
	now           func() time.Time
}

// Option configures a Registry
type Option func(*Registry)

// WithPacingDelay sets the wait between consecutive source invocations during
// fan-out. A zero delay disables pacing (useful in tests).
func WithPacingDelay(d time.Duration) Option {
	return func(r *Registry) {
		r.pacingDelay = d
	}
}

// WithSourceTimeout sets the per-invocation timeout applied to each scraper call
func WithSourceTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.sourceTimeout = d
	}
}

// WithClock overrides the time source used for stats timestamps
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// New creates a registry seeded from the catalog. Every descriptor gets a
// zero-initialized stats entry; duplicate names follow map-insert semantics
// (last write wins) with a warning.
func New(cat *catalog.Catalog, resolver scraper.Resolver, opts ...Option) *Registry {
	r := &Registry{
		descriptors:   make(map[string]catalog.Descriptor, len(cat.Sources)),
		stats:         make(map[string]*SourceStats, len(cat.Sources)),
		resolver:      resolver,
		pacingDelay:   defaultPacingDelay,
		sourceTimeout: defaultSourceTimeout,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	for _, desc := range cat.Sources {
		if _, exists := r.descriptors[desc.Name]; exists {
			slog.Warn("Duplicate source name in catalog, keeping later entry", "source", desc.Name)
		} else {
			r.order = append(r.order, desc.Name)
			r.stats[desc.Name] = &SourceStats{ComplianceStatus: ComplianceUnknown}
		}
		r.descriptors[desc.Name] = desc
	}

	return r
}

// resolve turns a source name into an invocable scraper. Failures are reported
// as a SourceError, never propagated.
func (r *Registry) resolve(name string) (scraper.Scraper, *SourceError) {
	desc, ok := r.descriptors[name]
	if !ok {
		return nil, &SourceError{Source: name, Kind: FailureUnknownSource}
	}

	s, err := r.resolver.Resolve(desc)
	if err != nil {
		slog.Error("Failed to resolve scraper for source", "source", name, "error", err)
		return nil, &SourceError{Source: name, Kind: FailureResolution, Err: err}
	}

	return s, nil
}

// Search queries a single source. Every failure mode (unknown name, resolution
// failure, invocation error, empty result) degrades to an empty slice; the
// registry never surfaces an error to its caller.
func (r *Registry) Search(ctx context.Context, name, query string, maxResults int) []catalog.Record {
	records, serr := r.search(ctx, name, query, maxResults)
	if serr != nil {
		return []catalog.Record{}
	}
	return records
}

// search is the typed-failure variant of Search used internally and by tests.
// A nil SourceError means the source ran and found something.
func (r *Registry) search(ctx context.Context, name, query string, maxResults int) ([]catalog.Record, *SourceError) {
	s, serr := r.resolve(name)
	if serr != nil {
		if serr.Kind != FailureUnknownSource {
			// The attempt reached a registered source; it counts.
			r.recordAttempt(name, false)
		}
		return nil, serr
	}

	callCtx, cancel := context.WithTimeout(ctx, r.sourceTimeout)
	defer cancel()

	records, err := s.Search(callCtx, query, maxResults)
	if err != nil {
		slog.Error("Source search failed", "source", name, "query", query, "error", err)
		r.recordAttempt(name, false)
		return nil, &SourceError{Source: name, Kind: FailureInvocation, Err: err}
	}

	if len(records) == 0 {
		r.recordAttempt(name, false)
		return nil, &SourceError{Source: name, Kind: FailureNoResults}
	}

	r.recordAttempt(name, true)
	return records, nil
}

// SearchAll fans a query out to every eligible source in catalog order, one at
// a time, pacing between invocations. Sources whose category is not in the
// filter are skipped entirely (no invocation, no stats). The result map only
// contains sources that returned at least one record; a failing source never
// aborts the fan-out. Cancelling the context stops the fan-out between sources
// and returns the partial results gathered so far.
func (r *Registry) SearchAll(ctx context.Context, query string, maxResultsPerSource int, categories ...string) map[string][]catalog.Record {
	eligible := r.eligibleSources(categories)
	results := make(map[string][]catalog.Record)

	slog.Info("Searching sources", "count", len(eligible), "query", query)

	for i, name := range eligible {
		if ctx.Err() != nil {
			slog.Warn("Fan-out cancelled, returning partial results",
				"completed", i, "total", len(eligible))
			break
		}

		records, serr := r.search(ctx, name, query, maxResultsPerSource)
		if serr == nil {
			results[name] = records
		}

		if i < len(eligible)-1 && r.pacingDelay > 0 {
			select {
			case <-time.After(r.pacingDelay):
			case <-ctx.Done():
			}
		}
	}

	return results
}

// eligibleSources returns catalog-ordered names, restricted to the given
// categories when any are specified.
func (r *Registry) eligibleSources(categories []string) []string {
	if len(categories) == 0 {
		names := make([]string, len(r.order))
		copy(names, r.order)
		return names
	}

	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}

	var names []string
	for _, name := range r.order {
		if _, ok := allowed[r.descriptors[name].Category]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Names returns all registered source names in catalog order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// SourcesByCategory returns the names whose descriptor category equals category
func (r *Registry) SourcesByCategory(category string) []string {
	var names []string
	for _, name := range r.order {
		if r.descriptors[name].Category == category {
			names = append(names, name)
		}
	}
	return names
}

// Categories returns the distinct categories in the catalog, sorted
func (r *Registry) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, desc := range r.descriptors {
		if _, ok := seen[desc.Category]; !ok {
			seen[desc.Category] = struct{}{}
			categories = append(categories, desc.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// Stats returns the catalog summary: total sources, categories, and per-category
// counts. It is derived from the immutable catalog only.
func (r *Registry) Stats() RegistryStats {
	categories := r.Categories()
	counts := make(map[string]int, len(categories))
	for _, desc := range r.descriptors {
		counts[desc.Category]++
	}

	return RegistryStats{
		TotalSources:   len(r.descriptors),
		Categories:     categories,
		CategoryCounts: counts,
		Sources:        r.Names(),
	}
}

// SourceInfo merges the descriptor and current stats for one source. The second
// return value is false when the name is unknown.
func (r *Registry) SourceInfo(name string) (SourceInfo, bool) {
	desc, ok := r.descriptors[name]
	if !ok {
		return SourceInfo{}, false
	}

	r.statsMu.RLock()
	stats := *r.stats[name]
	r.statsMu.RUnlock()

	return SourceInfo{
		Name:        desc.Name,
		Category:    desc.Category,
		Provider:    desc.Provider,
		Description: desc.Description,
		Stats:       stats,
	}, true
}

// SetComplianceStatus records an externally-determined compliance verdict for
// a source. Unknown names are ignored.
func (r *Registry) SetComplianceStatus(name, status string) {
	r.statsMu.Lock()
	defer r.statsMu.Unlock()
	if stats, ok := r.stats[name]; ok {
		stats.ComplianceStatus = status
	}
}

// StatsSnapshot returns a copy of all per-source stats keyed by source name
func (r *Registry) StatsSnapshot() map[string]SourceStats {
	r.statsMu.RLock()
	defer r.statsMu.RUnlock()

	snapshot := make(map[string]SourceStats, len(r.stats))
	for name, stats := range r.stats {
		snapshot[name] = *stats
	}
	return snapshot
}

// RestoreStats seeds stats from a previously persisted snapshot. Entries for
// names no longer in the catalog are dropped; counters only move forward.
func (r *Registry) RestoreStats(snapshot map[string]SourceStats) {
	r.statsMu.Lock()
	defer r.statsMu.Unlock()

	for name, saved := range snapshot {
		stats, ok := r.stats[name]
		if !ok {
			continue
		}
		if saved.TotalRequests > stats.TotalRequests {
			stats.TotalRequests = saved.TotalRequests
			stats.SuccessfulRequests = saved.SuccessfulRequests
			stats.LastUsed = saved.LastUsed
		}
		if saved.ComplianceStatus != "" {
			stats.ComplianceStatus = saved.ComplianceStatus
		}
	}
}

// recordAttempt registers one invocation attempt for a source. The total is
// always incremented; the success counter only moves when the source returned
// a non-empty result.
func (r *Registry) recordAttempt(name string, success bool) {
	r.statsMu.Lock()
	defer r.statsMu.Unlock()

	stats, ok := r.stats[name]
	if !ok {
		return
	}

	stats.TotalRequests++
	if success {
		stats.SuccessfulRequests++
	}
	now := r.now()
	stats.LastUsed = &now
}
