// Package service provides the business logic surface for the source registry
// API and CLI.
package service

import (
	"context"
	"errors"

	"github.com/dealvoy/source-registry-server/internal/catalog"
	"github.com/dealvoy/source-registry-server/internal/registry"
)

var (
	// ErrSourceNotFound is returned when a source is not found
	ErrSourceNotFound = errors.New("source not found")
	// ErrEmptyQuery is returned when a search is requested without a query
	ErrEmptyQuery = errors.New("query cannot be empty")
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go SearchService

// SearchService defines the interface for registry search operations
type SearchService interface {
	// CheckReadiness checks if the service is ready to serve requests
	CheckReadiness(ctx context.Context) error

	// SearchProducts fans a query out across retail sources and returns a
	// mapping of source name to the records it found. Sources that failed or
	// found nothing are absent from the mapping.
	SearchProducts(ctx context.Context, opts ...Option[SearchProductsOptions]) (map[string][]catalog.Record, error)

	// ListSources returns all registered source names in catalog order
	ListSources(ctx context.Context) ([]string, error)

	// ListSourcesByCategory returns the source names in the given category
	ListSourcesByCategory(ctx context.Context, category string) ([]string, error)

	// Categories returns the distinct source categories
	Categories(ctx context.Context) ([]string, error)

	// RegistryInfo returns the catalog summary statistics
	RegistryInfo(ctx context.Context) (*registry.RegistryStats, error)

	// SourceInfo returns the merged descriptor and stats for one source
	SourceInfo(ctx context.Context, name string) (*registry.SourceInfo, error)
}

// Option is a function that sets an option for the SearchProductsOptions
type Option[T SearchProductsOptions] func(*T) error

// SearchProductsOptions is the options for the SearchProducts operation
type SearchProductsOptions struct {
	// Query is the free-text search term (required)
	Query string

	// Sources restricts the search to the named sources. When set, the
	// category filter is ignored and unknown names are silently skipped.
	Sources []string

	// Categories restricts the fan-out to sources in these categories
	Categories []string

	// MaxResultsPerSource caps records per source; 0 uses the service default
	MaxResultsPerSource int
}

// WithQuery sets the search query
func WithQuery(query string) Option[SearchProductsOptions] {
	return func(o *SearchProductsOptions) error {
		o.Query = query
		return nil
	}
}

// WithSources restricts the search to specific sources
func WithSources(sources ...string) Option[SearchProductsOptions] {
	return func(o *SearchProductsOptions) error {
		o.Sources = sources
		return nil
	}
}

// WithCategories restricts the fan-out to specific categories
func WithCategories(categories ...string) Option[SearchProductsOptions] {
	return func(o *SearchProductsOptions) error {
		o.Categories = categories
		return nil
	}
}

// WithMaxResultsPerSource caps the records returned per source
func WithMaxResultsPerSource(n int) Option[SearchProductsOptions] {
	return func(o *SearchProductsOptions) error {
		o.MaxResultsPerSource = n
		return nil
	}
}
