package metrics

import "time"

// ResultLabel enumerates invocation outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultError   ResultLabel = "error"
)

// Recorder defines observability hooks for helper invocations.
type Recorder interface {
	// ObserveInvocation records one helper call, labelled by the finalizer that produced
	// (or would have produced) the output.
	ObserveInvocation(finalizer string, result ResultLabel, d time.Duration)
	// IncError counts a failed call by error category.
	IncError(category string)
	// IncIgnoredOption counts an option that lost to a higher-priority one.
	IncIgnoredOption(key string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveInvocation(string, ResultLabel, time.Duration) {}
func (NoopRecorder) IncError(string)                                      {}
func (NoopRecorder) IncIgnoredOption(string)                              {}
