package scraper

import (
	"fmt"
	"sync"

	"github.com/dealvoy/source-registry-server/internal/catalog"
)

// tableResolver resolves providers from a registration table. It is safe for
// concurrent use.
type tableResolver struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

var _ Resolver = (*tableResolver)(nil)

// NewResolver creates an empty provider resolver
func NewResolver() *tableResolver {
	return &tableResolver{
		factories: make(map[string]Factory),
	}
}

// NewDefaultResolver creates a resolver with the built-in providers registered
func NewDefaultResolver() *tableResolver {
	r := NewResolver()
	r.Register(catalog.ProviderStatic, NewStaticScraper)
	r.Register(catalog.ProviderHTTP, NewHTTPScraper)
	return r
}

// Register adds or replaces the factory for a provider key
func (r *tableResolver) Register(key string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[key] = factory
}

// Resolve constructs the Scraper serving the descriptor. An unregistered
// provider key yields a NotFoundError.
func (r *tableResolver) Resolve(desc catalog.Descriptor) (Scraper, error) {
	r.mu.RLock()
	factory, ok := r.factories[desc.Provider]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Provider: desc.Provider}
	}

	s, err := factory(desc)
	if err != nil {
		return nil, fmt.Errorf("failed to construct %q scraper for source %s: %w",
			desc.Provider, desc.Name, err)
	}

	return s, nil
}
