// Package scraper defines the provider layer the registry resolves sources
// against. A provider turns a catalog descriptor into a Scraper that can be
// invoked for product searches.
package scraper

import (
	"context"
	"fmt"

	"github.com/dealvoy/source-registry-server/internal/catalog"
)

//go:generate mockgen -destination=mocks/mock_scraper.go -package=mocks -source=types.go Scraper,Resolver

// Scraper searches one retail source for products matching a query. Records
// are opaque to callers; implementations decide their shape.
type Scraper interface {
	// Search returns up to maxResults records for the query
	Search(ctx context.Context, query string, maxResults int) ([]catalog.Record, error)
}

// Factory constructs a Scraper for a catalog descriptor
type Factory func(desc catalog.Descriptor) (Scraper, error)

// Resolver turns a descriptor into an invocable Scraper at call time. It is
// the only boundary the registry crosses; failures surface as a NotFoundError
// or a provider construction error, never a panic.
type Resolver interface {
	// Resolve returns the Scraper serving the given descriptor
	Resolve(desc catalog.Descriptor) (Scraper, error)
}

// NotFoundError indicates that no provider is registered for a descriptor's
// provider key.
type NotFoundError struct {
	Provider string
}

// Error returns the error message
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no scraper provider registered for key %q", e.Provider)
}
