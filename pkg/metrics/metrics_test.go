package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("reservation-showcase")

	m.IncReservationCreated("salon", "backend")
	m.IncReservationCreated("salon", "backend")
	m.IncMockFallback("clinic", "list")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/businesses", http.StatusOK, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.reservationsCreated.WithLabelValues("salon", "backend")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mockFallbacks.WithLabelValues("clinic", "list")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/businesses", "200")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncReservationCreated("salon", "mock")
		m.IncWebhookEvent("salon", "follow")
		m.ObserveDBQuery("select", time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("reservation-showcase")
	m.IncWebhookEvent("restaurant", "message")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "line_webhook_events_total")
}
