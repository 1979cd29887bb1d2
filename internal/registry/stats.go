package registry

import "time"

// ComplianceUnknown is the initial compliance status for every source. The
// registry never changes it on its own; an external compliance audit sets it.
const ComplianceUnknown = "unknown"

// SourceStats tracks invocation statistics for one source. Counters are
// monotonic and SuccessfulRequests never exceeds TotalRequests.
type SourceStats struct {
	TotalRequests      int64      `json:"total_requests" yaml:"totalRequests"`
	SuccessfulRequests int64      `json:"successful_requests" yaml:"successfulRequests"`
	LastUsed           *time.Time `json:"last_used,omitempty" yaml:"lastUsed,omitempty"`
	ComplianceStatus   string     `json:"compliance_status" yaml:"complianceStatus"`
}

// RegistryStats summarizes the static catalog. It is derived purely from
// descriptors and never changes while the process runs.
//
//nolint:revive // The stuttering name matches the API surface it is served on
type RegistryStats struct {
	TotalSources   int            `json:"total_sources"`
	Categories     []string       `json:"categories"`
	CategoryCounts map[string]int `json:"category_counts"`
	Sources        []string       `json:"sources"`
}

// SourceInfo merges a source's static descriptor with its mutable stats for
// inspection and monitoring.
type SourceInfo struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Provider    string      `json:"provider"`
	Description string      `json:"description,omitempty"`
	Stats       SourceStats `json:"stats"`
}
