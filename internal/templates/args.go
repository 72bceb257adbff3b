package templates

import (
	"fmt"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
	"git.home.luguber.info/inful/tmpltime/internal/pipeline"
)

func paramsFromArgs(args []any) (pipeline.Params, error) {
	if len(args) == 1 {
		switch m := args[0].(type) {
		case map[string]any:
			return pipeline.Values(m), nil
		case map[string]string:
			return pipeline.Strings(m), nil
		case pipeline.Params:
			return m, nil
		}
	}

	if len(args)%2 != 0 {
		return nil, ferrors.ValidationError(fmt.Sprintf("%s expects key/value pairs or a single map, got %d arguments", FuncName, len(args))).Build()
	}

	values := make(pipeline.Values, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			return nil, ferrors.ValidationError(fmt.Sprintf("%s option name at position %d must be a string, got %T", FuncName, i, args[i])).Build()
		}
		if _, dup := values[key]; dup {
			return nil, ferrors.ValidationError(fmt.Sprintf("%s option %q given more than once", FuncName, key)).
				ForParameter(key).
				Build()
		}
		values[key] = args[i+1]
	}
	return values, nil
}
