// Package v0 provides the REST API handlers for source registry access.
package v0

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dealvoy/source-registry-server/internal/catalog"
	"github.com/dealvoy/source-registry-server/internal/logger"
	"github.com/dealvoy/source-registry-server/internal/service"
)

// SearchResponse represents the aggregated search response
type SearchResponse struct {
	Query   string                      `json:"query"`
	Sources int                         `json:"sources_with_results"`
	Results map[string][]catalog.Record `json:"results"`
}

// SourcesResponse represents the source listing response
type SourcesResponse struct {
	Sources []string `json:"sources"`
	Total   int      `json:"total"`
}

// CategoriesResponse represents the category listing response
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Routes defines the routes for the registry API with dependency injection
type Routes struct {
	service service.SearchService
}

// NewRoutes creates a new Routes instance with the provided service
func NewRoutes(svc service.SearchService) *Routes {
	return &Routes{
		service: svc,
	}
}

// Router creates a new router for the registry API
func Router(svc service.SearchService) http.Handler {
	routes := NewRoutes(svc)

	r := chi.NewRouter()

	r.Get("/search", routes.search)
	r.Get("/sources", routes.listSources)
	r.Get("/sources/{name}", routes.getSourceInfo)
	r.Get("/categories", routes.listCategories)
	r.Get("/registry/info", routes.getRegistryInfo)

	return r
}

// search handles GET /api/v0/search
func (rr *Routes) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	opts := []service.Option[service.SearchProductsOptions]{
		service.WithQuery(q),
	}
	if sources := splitParam(r.URL.Query().Get("sources")); len(sources) > 0 {
		opts = append(opts, service.WithSources(sources...))
	}
	if categories := splitParam(r.URL.Query().Get("categories")); len(categories) > 0 {
		opts = append(opts, service.WithCategories(categories...))
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			rr.writeErrorResponse(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		opts = append(opts, service.WithMaxResultsPerSource(limit))
	}

	results, err := rr.service.SearchProducts(r.Context(), opts...)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuery) {
			rr.writeErrorResponse(w, "query parameter 'q' is required", http.StatusBadRequest)
			return
		}
		logger.Errorf("Search failed: %v", err)
		rr.writeErrorResponse(w, "Search failed", http.StatusInternalServerError)
		return
	}

	rr.writeJSONResponse(w, SearchResponse{
		Query:   q,
		Sources: len(results),
		Results: results,
	})
}

// listSources handles GET /api/v0/sources
func (rr *Routes) listSources(w http.ResponseWriter, r *http.Request) {
	var (
		sources []string
		err     error
	)

	if category := r.URL.Query().Get("category"); category != "" {
		sources, err = rr.service.ListSourcesByCategory(r.Context(), category)
	} else {
		sources, err = rr.service.ListSources(r.Context())
	}
	if err != nil {
		logger.Errorf("Failed to list sources: %v", err)
		rr.writeErrorResponse(w, "Failed to list sources", http.StatusInternalServerError)
		return
	}

	rr.writeJSONResponse(w, SourcesResponse{
		Sources: sources,
		Total:   len(sources),
	})
}

// getSourceInfo handles GET /api/v0/sources/{name}
func (rr *Routes) getSourceInfo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	info, err := rr.service.SourceInfo(r.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrSourceNotFound) {
			rr.writeErrorResponse(w, "Source not found", http.StatusNotFound)
			return
		}
		logger.Errorf("Failed to get source info: %v", err)
		rr.writeErrorResponse(w, "Failed to get source information", http.StatusInternalServerError)
		return
	}

	rr.writeJSONResponse(w, info)
}

// listCategories handles GET /api/v0/categories
func (rr *Routes) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := rr.service.Categories(r.Context())
	if err != nil {
		logger.Errorf("Failed to list categories: %v", err)
		rr.writeErrorResponse(w, "Failed to list categories", http.StatusInternalServerError)
		return
	}

	rr.writeJSONResponse(w, CategoriesResponse{Categories: categories})
}

// getRegistryInfo handles GET /api/v0/registry/info
func (rr *Routes) getRegistryInfo(w http.ResponseWriter, r *http.Request) {
	info, err := rr.service.RegistryInfo(r.Context())
	if err != nil {
		logger.Errorf("Failed to get registry info: %v", err)
		rr.writeErrorResponse(w, "Failed to get registry information", http.StatusInternalServerError)
		return
	}

	rr.writeJSONResponse(w, info)
}

// HealthRouter creates a router for health check endpoints
func HealthRouter(svc service.SearchService) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/readiness", func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CheckReadiness(r.Context()); err != nil {
			logger.Warnf("Readiness check failed: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("Not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Ready"))
	})

	return r
}

// writeJSONResponse writes a JSON response body
func (*Routes) writeJSONResponse(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("Failed to encode response: %v", err)
	}
}

// writeErrorResponse writes a JSON error response with the given status code
func (*Routes) writeErrorResponse(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		logger.Errorf("Failed to encode error response: %v", err)
	}
}

// splitParam splits a comma-separated query parameter, dropping empty entries
func splitParam(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
