package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// RenderTemplateBody renders the template body with provided data and the datetime helper.
func (e *Engine) RenderTemplateBody(bodyTemplate string, data map[string]any) (string, error) {
	tpl, err := template.New("body").Funcs(e.FuncMap()).Option("missingkey=error").Parse(bodyTemplate)
	if err != nil {
		return "", fmt.Errorf("parse template body: %w", err)
	}

	data, err = e.withBuiltinTemplateData(data)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template body: %w", err)
	}
	return buf.String(), nil
}
