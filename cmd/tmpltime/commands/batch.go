package commands

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
	"git.home.luguber.info/inful/tmpltime/internal/logfields"
	"git.home.luguber.info/inful/tmpltime/internal/templates"
)

// BatchCmd implements the 'batch' command.
type BatchCmd struct {
	Files  []string `arg:"" help:"Template files to render" type:"path"`
	Data   string   `short:"d" name:"data" help:"YAML file with template data shared by every template" type:"path"`
	OutDir string   `short:"o" name:"out-dir" required:"" help:"Directory receiving the rendered files" type:"path"`
	Ext    string   `name:"strip-ext" default:".tmpl" help:"Extension removed from each template name"`
	Force  bool     `help:"Overwrite existing output files"`
	Jobs   int      `short:"j" default:"0" help:"Templates rendered in parallel (0 = GOMAXPROCS)"`
}

func (b *BatchCmd) Run(g *Global) error {
	data, err := LoadTemplateData(b.Data)
	if err != nil {
		return err
	}
	if err := checkUniqueOutputs(b.Files, b.Ext); err != nil {
		return err
	}

	engine := g.Engine()
	jobs := b.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(jobs)
	for _, file := range b.Files {
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			return b.renderOne(g, engine, file, data)
		})
	}
	return eg.Wait()
}

func (b *BatchCmd) renderOne(g *Global, engine *templates.Engine, file string, data map[string]any) error {
	body, err := os.ReadFile(file) // #nosec G304 -- template path is chosen by the operator
	if err != nil {
		return ferrors.FileSystemError("failed to read template").WithCause(err).WithContext("path", file).Build()
	}

	out, err := engine.RenderTemplateBody(string(body), data)
	if err != nil {
		wrapped := ferrors.WrapError(err, ferrors.GetCategory(err), "failed to render "+filepath.Base(file)).WithContext("path", file)
		if c, ok := ferrors.AsClassified(err); ok && c.Parameter() != "" {
			wrapped = wrapped.ForParameter(c.Parameter())
		}
		return wrapped.Build()
	}

	target := filepath.Join(b.OutDir, outputName(file, b.Ext))
	if err := templates.WriteRenderedFile(target, out, b.Force); err != nil {
		return err
	}
	g.logger().Debug("Rendered template", logfields.Template(file), "output", target)
	return nil
}

func outputName(file, ext string) string {
	name := filepath.Base(file)
	if ext != "" && strings.HasSuffix(name, ext) && len(name) > len(ext) {
		return strings.TrimSuffix(name, ext)
	}
	return name
}

func checkUniqueOutputs(files []string, ext string) error {
	seen := make(map[string]string, len(files))
	for _, file := range files {
		name := outputName(file, ext)
		if prev, dup := seen[name]; dup {
			return ferrors.ValidationError("templates " + prev + " and " + file + " both render to " + name).Build()
		}
		seen[name] = file
	}
	return nil
}
