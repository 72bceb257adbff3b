package templates

import (
	"maps"

	"git.home.luguber.info/inful/tmpltime/internal/pipeline"
)

// Builtin data keys filled from the pipeline clock when the caller does not set them.
const (
	DataDate     = "Date"
	DataDateTime = "DateTime"
)

func (e *Engine) withBuiltinTemplateData(data map[string]any) (map[string]any, error) {
	builtins := []struct {
		key    string
		params pipeline.Strings
	}{
		{DataDate, pipeline.Strings{pipeline.KeyOutputFormat: "%Y-%m-%d"}},
		{DataDateTime, pipeline.Strings{}},
	}

	var out map[string]any
	for _, b := range builtins {
		if _, ok := data[b.key]; ok {
			continue
		}
		if out == nil {
			out = make(map[string]any, len(data)+len(builtins))
			maps.Copy(out, data)
		}
		value, err := e.pipeline.Run(b.params)
		if err != nil {
			return nil, err
		}
		out[b.key] = value
	}

	if out == nil {
		return data, nil
	}
	return out, nil
}
