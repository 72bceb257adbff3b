package commands

import (
	"io"
	"log/slog"
	"os"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/tmpltime/internal/config"
	"git.home.luguber.info/inful/tmpltime/internal/metrics"
	"git.home.luguber.info/inful/tmpltime/internal/pipeline"
	"git.home.luguber.info/inful/tmpltime/internal/templates"

	"github.com/alecthomas/kong"
)

// Global carries the state shared by every subcommand.
type Global struct {
	Logger     *slog.Logger
	Config     *config.Config
	ConfigPath string
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer

	// Clock overrides the wall clock; nil uses the system clock.
	Clock pipeline.Clock
	// Registry is set when metrics are enabled.
	Registry *prom.Registry

	recorder *metrics.PrometheusRecorder
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"tmpltime.yaml" env:"TMPLTIME_CONFIG"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Eval    EvalCmd    `cmd:"" help:"Run the datetime helper once with the given options"`
	Render  RenderCmd  `cmd:"" help:"Render a text/template that uses the datetime helper"`
	Batch   BatchCmd   `cmd:"" help:"Render several templates in parallel into a directory"`
	Keys    KeysCmd    `cmd:"" help:"List the recognized option keys by stage, in priority order"`
	Locales LocalesCmd `cmd:"" help:"List the locales accepted by the locale option"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing and installs a provisional logger; NewGlobal replaces
// it once the configuration is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// NewGlobal loads the configuration named by the CLI flags and builds the shared state.
func NewGlobal(c *CLI) (*Global, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	g := &Global{
		Logger:     newLogger(cfg.Logging, c.Verbose, os.Stderr),
		Config:     cfg,
		ConfigPath: c.Config,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
	slog.SetDefault(g.Logger)

	if cfg.Metrics.Enabled {
		g.Registry = prom.NewRegistry()
	}
	return g, nil
}

func newLogger(cfg config.LoggingConfig, verbose bool, w io.Writer) *slog.Logger {
	level := cfg.Level.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Engine builds a template engine honoring the configured capabilities.
func (g *Global) Engine() *templates.Engine {
	popts := []pipeline.PipelineOption{pipeline.WithLogger(g.logger())}
	if g.Clock != nil {
		popts = append(popts, pipeline.WithClock(g.Clock))
	}
	if g.Config != nil && !g.Config.Capabilities.NamedZonesEnabled() {
		popts = append(popts, pipeline.WithZoneResolver(nil))
	}
	if g.Config != nil && !g.Config.Capabilities.LocalesEnabled() {
		popts = append(popts, pipeline.WithLocaleFormatter(nil))
	}

	eopts := []templates.EngineOption{templates.WithLogger(g.logger())}
	if g.Registry != nil {
		if g.recorder == nil {
			g.recorder = metrics.NewPrometheusRecorder(g.Registry)
		}
		eopts = append(eopts, templates.WithRecorder(g.recorder))
	}
	return templates.NewEngine(pipeline.NewPipeline(popts...), eopts...)
}

// FlushMetrics exports the registry to the configured file, or to stderr when no file is
// configured. It does nothing when metrics are disabled.
func (g *Global) FlushMetrics() error {
	if g.Registry == nil {
		return nil
	}
	if g.Config != nil && g.Config.Metrics.File != "" {
		return metrics.WriteTextFile(g.Config.Metrics.File, g.Registry)
	}
	return metrics.WriteText(g.Stderr, g.Registry)
}

func (g *Global) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}
