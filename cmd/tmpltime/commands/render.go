package commands

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
	"git.home.luguber.info/inful/tmpltime/internal/logfields"
	"git.home.luguber.info/inful/tmpltime/internal/templates"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	File   string `arg:"" optional:"" help:"Template file, or - for stdin (default: stdin)"`
	Data   string `short:"d" name:"data" help:"YAML file with template data" type:"path"`
	Output string `short:"o" name:"output" help:"Write the result to a file instead of stdout" type:"path"`
	Force  bool   `help:"Overwrite an existing output file"`
}

func (r *RenderCmd) Run(g *Global) error {
	body, err := r.readTemplate(g)
	if err != nil {
		return err
	}
	data, err := LoadTemplateData(r.Data)
	if err != nil {
		return err
	}

	g.logger().Debug("Rendering template", logfields.Template(r.templateName()))
	out, err := g.Engine().RenderTemplateBody(body, data)
	if err != nil {
		return err
	}

	if r.Output != "" {
		return templates.WriteRenderedFile(r.Output, out, r.Force)
	}
	_, err = io.WriteString(g.Stdout, out)
	return err
}

func (r *RenderCmd) templateName() string {
	if r.File == "" || r.File == "-" {
		return "<stdin>"
	}
	return r.File
}

func (r *RenderCmd) readTemplate(g *Global) (string, error) {
	var (
		data []byte
		err  error
	)
	if r.File == "" || r.File == "-" {
		data, err = io.ReadAll(g.Stdin)
	} else {
		data, err = os.ReadFile(r.File) // #nosec G304 -- template path is chosen by the operator
	}
	if err != nil {
		return "", ferrors.FileSystemError("failed to read template").WithCause(err).WithContext("path", r.templateName()).Build()
	}
	return string(data), nil
}

// LoadTemplateData reads a YAML mapping for template data. An empty path yields nil.
func LoadTemplateData(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path) // #nosec G304 -- data path is chosen by the operator
	if err != nil {
		return nil, ferrors.FileSystemError("failed to read template data").WithCause(err).WithContext("path", path).Build()
	}
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, ferrors.ValidationError(fmt.Sprintf("template data in %s is not a YAML mapping", path)).WithCause(err).Build()
	}
	return data, nil
}
