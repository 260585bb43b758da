package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /confirmar-presenca", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	mux.HandleFunc("GET /metrics", func(w http.ResponseWriter, r *http.Request) {})
	handler := m.Middleware(mux)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/confirmar-presenca", nil),
		httptest.NewRequest(http.MethodPost, "/confirmar-presenca", nil),
		httptest.NewRequest(http.MethodGet, "/does-not-exist", nil),
		httptest.NewRequest(http.MethodGet, "/metrics", nil),
	} {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestCount.WithLabelValues(http.MethodPost, "POST /confirmar-presenca", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requestCount), "/metrics is not counted")
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	require.Error(t, err)
}
