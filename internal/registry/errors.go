package registry

import "fmt"

// FailureKind classifies why a source produced no results
type FailureKind string

const (
	// FailureUnknownSource means the requested name is not in the catalog
	FailureUnknownSource FailureKind = "unknown_source"

	// FailureResolution means the provider for the source could not be resolved
	FailureResolution FailureKind = "resolution"

	// FailureInvocation means the resolved scraper returned an error
	FailureInvocation FailureKind = "invocation"

	// FailureNoResults means the scraper ran but found nothing
	FailureNoResults FailureKind = "no_results"
)

// SourceError is the registry's internal failure channel. Per-source searches
// return it instead of panicking or propagating provider errors; aggregation
// folds it into omission from the result map.
type SourceError struct {
	Source string
	Kind   FailureKind
	Err    error
}

// Error returns the error message
func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source %s: %s: %v", e.Source, e.Kind, e.Err)
	}
	return fmt.Sprintf("source %s: %s", e.Source, e.Kind)
}

// Unwrap returns the underlying cause
func (e *SourceError) Unwrap() error {
	return e.Err
}
