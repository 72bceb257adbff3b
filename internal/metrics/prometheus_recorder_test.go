package metrics

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveInvocation("to_rfc3339", ResultSuccess, 150*time.Microsecond)
	pr.ObserveInvocation("to_rfc3339", ResultSuccess, 20*time.Microsecond)
	pr.ObserveInvocation("years_since", ResultError, 5*time.Microsecond)
	pr.IncError("invalid_format")
	pr.IncIgnoredOption("locale")

	assert.InDelta(t, 2, testutil.ToFloat64(pr.invocations.WithLabelValues("to_rfc3339", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.invocations.WithLabelValues("years_since", "error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.errors.WithLabelValues("invalid_format")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.ignored.WithLabelValues("locale")), 0)

	count, err := testutil.GatherAndCount(reg, "tmpltime_invocation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewPrometheusRecorderNilRegistry(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	require.NotNil(t, pr)
	pr.IncError("internal")
	assert.InDelta(t, 1, testutil.ToFloat64(pr.errors.WithLabelValues("internal")), 0)
}

func TestWriteText(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncError("out_of_range")

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, "# TYPE tmpltime_errors_total counter")
	assert.Contains(t, out, `tmpltime_errors_total{category="out_of_range"} 1`)
}

func TestWriteTextFile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncIgnoredOption("to_rfc2822")

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the export\n"), 0o600))
	require.NoError(t, WriteTextFile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tmpltime_ignored_options_total{key="to_rfc2822"} 1`)
	assert.NotContains(t, string(data), "stale")
}
