package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/depscope/pkg/errors"
	"github.com/matzehuels/depscope/pkg/observability"
)

const namespace = "depscope"

// Collector exports inspection, outbound HTTP, and API metrics on its own
// registry. It implements [observability.InspectHooks] and
// [observability.HTTPHooks].
type Collector struct {
	registry *prometheus.Registry

	StateTransitions *prometheus.CounterVec
	Runs             *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	Dependencies     *prometheus.CounterVec
	Vulnerable       *prometheus.CounterVec
	VersionLookups   *prometheus.CounterVec
	LookupDuration   *prometheus.HistogramVec

	OutboundRequests *prometheus.CounterVec
	OutboundDuration *prometheus.HistogramVec
	OutboundErrors   *prometheus.CounterVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

var (
	_ observability.InspectHooks = (*Collector)(nil)
	_ observability.HTTPHooks    = (*Collector)(nil)
)

// New creates a Collector with all metrics registered, plus the Go runtime
// and process collectors.
func New() *Collector {
	c := &Collector{registry: prometheus.NewRegistry()}

	c.StateTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_transitions_total",
			Help:      "Inspection state transitions by target state",
		},
		[]string{"state"},
	)

	c.Runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed inspection runs by outcome (ok or error code)",
		},
		[]string{"outcome"},
	)

	c.RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of inspection runs in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	c.Dependencies = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dependencies_total",
			Help:      "Dependencies inspected by manifest type",
		},
		[]string{"file_type"},
	)

	c.Vulnerable = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vulnerable_dependencies_total",
			Help:      "Dependencies matched to a Dependabot alert by manifest type",
		},
		[]string{"file_type"},
	)

	c.VersionLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "version_lookups_total",
			Help:      "Registry lookups by ecosystem and result (resolved or unknown)",
		},
		[]string{"ecosystem", "result"},
	)

	c.LookupDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "version_lookup_duration_seconds",
			Help:      "Duration of registry lookups in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"ecosystem"},
	)

	c.OutboundRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbound_requests_total",
			Help:      "Outgoing HTTP requests by host and status code",
		},
		[]string{"host", "status"},
	)

	c.OutboundDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "outbound_request_duration_seconds",
			Help:      "Duration of outgoing HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"host"},
	)

	c.OutboundErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbound_errors_total",
			Help:      "Outgoing HTTP requests that failed without a response",
		},
		[]string{"host"},
	)

	c.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	c.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.StateTransitions,
		c.Runs,
		c.RunDuration,
		c.Dependencies,
		c.Vulnerable,
		c.VersionLookups,
		c.LookupDuration,
		c.OutboundRequests,
		c.OutboundDuration,
		c.OutboundErrors,
		c.HTTPRequestsTotal,
		c.HTTPRequestDuration,
	)

	return c
}

// Registry returns the registry the metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) OnStateChange(_ context.Context, _ string, state string) {
	c.StateTransitions.WithLabelValues(state).Inc()
}

func (c *Collector) OnVersionLookup(_ context.Context, ecosystem string, resolved bool, d time.Duration) {
	result := "unknown"
	if resolved {
		result = "resolved"
	}
	c.VersionLookups.WithLabelValues(ecosystem, result).Inc()
	c.LookupDuration.WithLabelValues(ecosystem).Observe(d.Seconds())
}

func (c *Collector) OnRunComplete(_ context.Context, _ string, fileType string, dependencies, vulnerable int, d time.Duration, err error) {
	c.RunDuration.Observe(d.Seconds())
	if err != nil {
		outcome := string(errors.GetCode(err))
		if outcome == "" {
			outcome = string(errors.ErrCodeInternal)
		}
		c.Runs.WithLabelValues(outcome).Inc()
		return
	}
	c.Runs.WithLabelValues("ok").Inc()
	c.Dependencies.WithLabelValues(fileType).Add(float64(dependencies))
	c.Vulnerable.WithLabelValues(fileType).Add(float64(vulnerable))
}

func (c *Collector) OnRequest(context.Context, string, string, string) {}

func (c *Collector) OnResponse(_ context.Context, _ string, host, _ string, status int, d time.Duration) {
	c.OutboundRequests.WithLabelValues(host, strconv.Itoa(status)).Inc()
	c.OutboundDuration.WithLabelValues(host).Observe(d.Seconds())
}

func (c *Collector) OnError(_ context.Context, _ string, host, _ string, _ error) {
	c.OutboundErrors.WithLabelValues(host).Inc()
}

// Middleware records request count and duration per chi route pattern, so
// /api/chat/sessions/{id}/messages is one series regardless of id.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}

		c.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
		c.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
