package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	t.Parallel()

	metrics, err := NewHTTPMetrics(noop.NewMeterProvider())
	require.NoError(t, err)
	require.NotNil(t, metrics)

	handler := metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v0/sources", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNilHTTPMetricsMiddlewarePassesThrough(t *testing.T) {
	t.Parallel()

	var metrics *HTTPMetrics
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := metrics.Middleware(inner)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsMiddlewareNilProvider(t *testing.T) {
	t.Parallel()

	mw, err := MetricsMiddleware(nil)
	require.NoError(t, err)

	called := false
	handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func TestGetRoutePattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown_route", getRoutePattern(httptest.NewRequest(http.MethodGet, "/x", nil)))
}
