package templates

import (
	"context"
	"log/slog"
	"text/template"
	"time"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
	"git.home.luguber.info/inful/tmpltime/internal/logfields"
	"git.home.luguber.info/inful/tmpltime/internal/metrics"
	"git.home.luguber.info/inful/tmpltime/internal/pipeline"
)

// FuncName is the name the helper is registered under.
const FuncName = "datetime"

// Engine renders templates with the datetime helper.
type Engine struct {
	pipeline *pipeline.Pipeline
	recorder metrics.Recorder
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRecorder sets the metrics recorder. Nil restores the no-op recorder.
func WithRecorder(r metrics.Recorder) EngineOption {
	return func(e *Engine) {
		if r == nil {
			r = metrics.NoopRecorder{}
		}
		e.recorder = r
	}
}

// WithLogger sets the logger used for render tracing.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates an Engine over p. A nil p uses pipeline.NewPipeline defaults.
func NewEngine(p *pipeline.Pipeline, opts ...EngineOption) *Engine {
	if p == nil {
		p = pipeline.NewPipeline()
	}
	e := &Engine{
		pipeline: p,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FuncMap returns the helper functions for registration on a template.
func (e *Engine) FuncMap() template.FuncMap {
	return template.FuncMap{
		FuncName: e.Datetime,
	}
}

// Datetime runs the pipeline for one helper call. args is either a single option map or an
// even-length list of alternating string keys and values.
func (e *Engine) Datetime(args ...any) (string, error) {
	params, err := paramsFromArgs(args)
	if err != nil {
		e.recorder.IncError(string(ferrors.GetCategory(err)))
		return "", err
	}
	return e.Eval(params)
}

// Eval compiles and executes params, recording the outcome.
func (e *Engine) Eval(params pipeline.Params) (string, error) {
	start := time.Now()

	plan, err := pipeline.Compile(params)
	if err != nil {
		e.observe("", start, err)
		return "", err
	}
	for _, key := range plan.Ignored {
		e.recorder.IncIgnoredOption(key)
	}

	out, err := e.pipeline.Execute(plan)
	e.observe(plan.Finalizer.Key(), start, err)
	return out, err
}

func (e *Engine) observe(finalizer string, start time.Time, err error) {
	if finalizer == "" {
		finalizer = "none"
	}
	elapsed := time.Since(start)
	if err != nil {
		category := ferrors.GetCategory(err)
		e.recorder.ObserveInvocation(finalizer, metrics.ResultError, elapsed)
		e.recorder.IncError(string(category))
		e.logger.LogAttrs(context.Background(), slog.LevelDebug, "datetime helper failed",
			logfields.Finalizer(finalizer),
			logfields.Category(string(category)),
			logfields.DurationMS(float64(elapsed.Microseconds())/1000),
			logfields.Error(err))
		return
	}
	e.recorder.ObserveInvocation(finalizer, metrics.ResultSuccess, elapsed)
}
