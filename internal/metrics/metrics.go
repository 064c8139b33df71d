// Package metrics holds the Prometheus collectors of the service. All methods are safe on a
// nil *Metrics, which is what tests and the CLI use.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "watchearn"

type Metrics struct {
	registry *prometheus.Registry

	ViewDecisions       *prometheus.CounterVec
	EarnedCents         prometheus.Counter
	CooldownTransitions *prometheus.CounterVec
	Withdrawals         *prometheus.CounterVec
	CacheLookups        *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ViewDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_decisions_total",
			Help:      "Evaluated views by outcome (allowed or the deny reason).",
		}, []string{"outcome"}),
		EarnedCents: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "earned_cents_total",
			Help:      "Credited earnings in cents.",
		}),
		CooldownTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cooldown_transitions_total",
			Help:      "Cooldown state changes by resulting status and initiator.",
		}, []string{"status", "by"}),
		Withdrawals: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_total",
			Help:      "Withdrawal requests and resolutions by status.",
		}, []string{"status"}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_lookups_total",
			Help:      "Video metadata cache lookups by result.",
		}, []string{"result"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route pattern, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

func (m *Metrics) ViewDecision(outcome string) {
	if m == nil {
		return
	}
	m.ViewDecisions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Earned(cents int64) {
	if m == nil {
		return
	}
	m.EarnedCents.Add(float64(cents))
}

func (m *Metrics) CooldownTransition(status, by string) {
	if m == nil {
		return
	}
	m.CooldownTransitions.WithLabelValues(status, by).Inc()
}

func (m *Metrics) Withdrawal(status string) {
	if m == nil {
		return
	}
	m.Withdrawals.WithLabelValues(status).Inc()
}

func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// Handler serves the private registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request durations labelled by chi route pattern, which keeps the
// label cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RequestDuration.WithLabelValues(route, r.Method, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
