package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "tmpltime"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	duration    *prom.HistogramVec
	invocations *prom.CounterVec
	errors      *prom.CounterVec
	ignored     *prom.CounterVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg. A nil reg gets
// a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "invocation_duration_seconds",
			Help:      "Duration of datetime helper invocations",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"finalizer"}),
		invocations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "invocations_total",
			Help:      "Datetime helper invocations by finalizer and result",
		}, []string{"finalizer", "result"}),
		errors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Failed datetime helper invocations by error category",
		}, []string{"category"}),
		ignored: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "ignored_options_total",
			Help:      "Options discarded because a higher-priority option was present",
		}, []string{"key"}),
	}
	reg.MustRegister(pr.duration, pr.invocations, pr.errors, pr.ignored)
	return pr
}

func (p *PrometheusRecorder) ObserveInvocation(finalizer string, result ResultLabel, d time.Duration) {
	if p == nil {
		return
	}
	p.duration.WithLabelValues(finalizer).Observe(d.Seconds())
	p.invocations.WithLabelValues(finalizer, string(result)).Inc()
}

func (p *PrometheusRecorder) IncError(category string) {
	if p == nil {
		return
	}
	p.errors.WithLabelValues(category).Inc()
}

func (p *PrometheusRecorder) IncIgnoredOption(key string) {
	if p == nil {
		return
	}
	p.ignored.WithLabelValues(key).Inc()
}
