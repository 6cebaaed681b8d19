package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/licensescan/pkg/observability"
)

func TestMetrics_ResolveHooks(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	ctx := context.Background()

	m.OnResolveStart(ctx, "o/r")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checksInFlight))

	m.OnManifestFound(ctx, "o/r", "requirements.txt", "main")
	m.OnLookup(ctx, "requests", "declared", "free", 10*time.Millisecond)
	m.OnLookup(ctx, "mystery", "absent", "unknown", 10*time.Millisecond)
	m.OnLookup(ctx, "urllib3", "declared", "free", 10*time.Millisecond)
	m.OnResolveComplete(ctx, "o/r", "report", 3, time.Second, nil)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.checksInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.manifests.WithLabelValues("requirements.txt")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.lookups.WithLabelValues("declared", "free")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookups.WithLabelValues("absent", "unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checks.WithLabelValues("report")))
}

func TestMetrics_ResolveError(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	ctx := context.Background()

	m.OnResolveStart(ctx, "o/r")
	m.OnResolveComplete(ctx, "o/r", "", 0, time.Second, errors.New("403"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.checks.WithLabelValues("error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.checksInFlight))
}

func TestMetrics_HTTPHooks(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	ctx := context.Background()

	m.OnRequest(ctx, "GET", "pypi.org", "/pypi/requests/json")
	m.OnResponse(ctx, "GET", "pypi.org", "/pypi/requests/json", 200, 20*time.Millisecond)
	m.OnResponse(ctx, "GET", "pypi.org", "/pypi/nope/json", 404, 20*time.Millisecond)
	m.OnError(ctx, "GET", "raw.githubusercontent.com", "/o/r/main/requirements.txt", errors.New("timeout"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstream.WithLabelValues("pypi.org", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstream.WithLabelValues("pypi.org", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamErrors.WithLabelValues("raw.githubusercontent.com")))
}

func TestMetrics_Install(t *testing.T) {
	t.Cleanup(observability.Reset)

	m := NewMetrics(prometheus.NewRegistry())
	m.Install()

	assert.Same(t, m, observability.Resolve())
	assert.Same(t, m, observability.HTTP())
}
