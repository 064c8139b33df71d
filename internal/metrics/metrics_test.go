package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ViewDecision("allowed")
	m.ViewDecision("allowed")
	m.ViewDecision("COOLDOWN_ACTIVE")
	m.Earned(25)
	m.CooldownTransition("completed", "user")
	m.Withdrawal("pending")
	m.CacheLookup(true)
	m.CacheLookup(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ViewDecisions.WithLabelValues("allowed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ViewDecisions.WithLabelValues("COOLDOWN_ACTIVE")))
	assert.Equal(t, 25.0, testutil.ToFloat64(m.EarnedCents))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CooldownTransitions.WithLabelValues("completed", "user")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Withdrawals.WithLabelValues("pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ViewDecision("allowed")
		m.Earned(1)
		m.CooldownTransition("interrupted", "reaper")
		m.Withdrawal("completed")
		m.CacheLookup(true)
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	assert.NotNil(t, m.Middleware(next))
}

func TestMetrics_HandlerAndMiddleware(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/videos/{videoID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", m.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos/abc", nil))
	require.Equal(t, http.StatusTeapot, w.Code)

	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `route="/api/videos/{videoID}"`))
	assert.True(t, strings.Contains(body, `status="418"`))
}
