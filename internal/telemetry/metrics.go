package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// SearchMetricsMeterName is the name used for the search metrics meter
	SearchMetricsMeterName = "github.com/dealvoy/source-registry-server/search"
)

// SearchMetrics holds the OpenTelemetry instruments for search fan-out metrics
type SearchMetrics struct {
	sourceSearches metric.Int64Counter
	fanoutDuration metric.Float64Histogram
}

// NewSearchMetrics creates a new SearchMetrics instance with the given meter
// provider. If provider is nil, it returns nil (no-op metrics).
func NewSearchMetrics(provider metric.MeterProvider) (*SearchMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(SearchMetricsMeterName)

	sourceSearches, err := meter.Int64Counter(
		"dealvoy_registry_source_searches_total",
		metric.WithDescription("Total number of per-source search attempts"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return nil, err
	}

	fanoutDuration, err := meter.Float64Histogram(
		"dealvoy_registry_fanout_duration_seconds",
		metric.WithDescription("Duration of aggregated search fan-outs in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120),
	)
	if err != nil {
		return nil, err
	}

	return &SearchMetrics{
		sourceSearches: sourceSearches,
		fanoutDuration: fanoutDuration,
	}, nil
}

// RecordSourceSearch records one per-source search attempt
func (m *SearchMetrics) RecordSourceSearch(ctx context.Context, source string, success bool) {
	if m == nil {
		return
	}
	m.sourceSearches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
		attribute.Bool("success", success),
	))
}

// RecordFanout records the duration and breadth of one aggregated search
func (m *SearchMetrics) RecordFanout(ctx context.Context, duration time.Duration, sourcesQueried int) {
	if m == nil {
		return
	}
	m.fanoutDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.Int("sources", sourcesQueried),
	))
}
