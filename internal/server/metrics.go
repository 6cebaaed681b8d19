package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/licensescan/pkg/observability"
)

const namespace = "licensescan"

// Metrics records check and outbound HTTP activity as Prometheus series.
// It implements [observability.ResolveHooks] and [observability.HTTPHooks].
type Metrics struct {
	checksInFlight  prometheus.Gauge
	checks          *prometheus.CounterVec
	checkDuration   *prometheus.HistogramVec
	manifests       *prometheus.CounterVec
	lookups         *prometheus.CounterVec
	lookupDuration  prometheus.Histogram
	upstream        *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	upstreamErrors  *prometheus.CounterVec
}

var (
	_ observability.ResolveHooks = (*Metrics)(nil)
	_ observability.HTTPHooks    = (*Metrics)(nil)
)

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checksInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "checks_in_flight",
			Help:      "Checks currently running.",
		}),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Completed checks by outcome.",
		}, []string{"outcome"}),
		checkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_seconds",
			Help:      "Check duration by outcome.",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"outcome"}),
		manifests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "manifests_found_total",
			Help:      "Manifests selected by file name.",
		}, []string{"file"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "license_lookups_total",
			Help:      "License lookups by status and category.",
		}, []string{"status", "category"}),
		lookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "license_lookup_duration_seconds",
			Help:      "License lookup duration.",
			Buckets:   prometheus.DefBuckets,
		}),
		upstream: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Outbound HTTP responses by host and status code.",
		}, []string{"host", "code"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Outbound HTTP request duration by host.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"host"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "Outbound HTTP requests that failed without a response.",
		}, []string{"host"}),
	}

	reg.MustRegister(
		m.checksInFlight,
		m.checks,
		m.checkDuration,
		m.manifests,
		m.lookups,
		m.lookupDuration,
		m.upstream,
		m.upstreamLatency,
		m.upstreamErrors,
	)
	return m
}

// Install registers m as the process-wide resolve and HTTP hooks.
func (m *Metrics) Install() {
	observability.SetResolveHooks(m)
	observability.SetHTTPHooks(m)
}

func (m *Metrics) OnResolveStart(context.Context, string) {
	m.checksInFlight.Inc()
}

func (m *Metrics) OnManifestFound(_ context.Context, _, fileName, _ string) {
	m.manifests.WithLabelValues(fileName).Inc()
}

func (m *Metrics) OnLookup(_ context.Context, _, status, category string, d time.Duration) {
	m.lookups.WithLabelValues(status, category).Inc()
	m.lookupDuration.Observe(d.Seconds())
}

func (m *Metrics) OnResolveComplete(_ context.Context, _, outcome string, _ int, d time.Duration, err error) {
	m.checksInFlight.Dec()
	if err != nil {
		outcome = "error"
	}
	m.checks.WithLabelValues(outcome).Inc()
	m.checkDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (m *Metrics) OnRequest(context.Context, string, string, string) {}

func (m *Metrics) OnResponse(_ context.Context, _, host, _ string, statusCode int, d time.Duration) {
	m.upstream.WithLabelValues(host, strconv.Itoa(statusCode)).Inc()
	m.upstreamLatency.WithLabelValues(host).Observe(d.Seconds())
}

func (m *Metrics) OnError(_ context.Context, _, host, _ string, _ error) {
	m.upstreamErrors.WithLabelValues(host).Inc()
}
