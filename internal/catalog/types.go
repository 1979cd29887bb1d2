// Package catalog defines the static catalog of retail data sources: which
// sources exist, how they are categorized, and which scraper provider serves
// each of them.
package catalog

// Record is a single product record returned by a source. The registry treats
// records as opaque; only the scraper that produced a record knows its shape.
type Record map[string]any

// Descriptor is a static, immutable catalog entry describing one source.
type Descriptor struct {
	// Name is the unique identifier for the source (lowercase by convention)
	Name string `yaml:"name" json:"name"`

	// Category is a free-text classification shared by related sources
	Category string `yaml:"category" json:"category"`

	// Provider is the key of the scraper provider that serves this source
	Provider string `yaml:"provider" json:"provider"`

	// Description is a human-readable summary of the source
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Endpoint is the search URL template for HTTP-backed providers.
	// The placeholders {query} and {limit} are substituted per request.
	Endpoint string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`

	// RecordPath is the gjson path to the record array in the endpoint's
	// response body. Defaults to the document root when empty.
	RecordPath string `yaml:"recordPath,omitempty" json:"recordPath,omitempty"`
}

// Catalog is an ordered list of source descriptors. Order is significant: the
// registry visits sources in catalog order during fan-out.
type Catalog struct {
	Sources []Descriptor `yaml:"sources" json:"sources"`
}

// ProviderHTTP is the provider key for the generic HTTP search provider.
const ProviderHTTP = "http"

// ProviderStatic is the provider key for the fixed in-memory demo provider.
const ProviderStatic = "static"
