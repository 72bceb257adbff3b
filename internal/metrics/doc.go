// Package metrics records datetime helper invocations.
//
// Components depend on the Recorder interface. NoopRecorder is the default and does
// nothing; PrometheusRecorder forwards to client_golang collectors registered on a
// caller-supplied registry, which WriteText exports in the Prometheus text format.
//
//	reg := prometheus.NewRegistry()
//	engine := templates.NewEngine(p, templates.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//	...
//	_ = metrics.WriteText(os.Stdout, reg)
package metrics
