package commands

import (
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
	"git.home.luguber.info/inful/tmpltime/internal/pipeline"
)

// EvalCmd implements the 'eval' command.
type EvalCmd struct {
	Set []string `short:"s" name:"set" sep:"none" placeholder:"KEY=VALUE" help:"Helper option (repeatable)"`
}

func (e *EvalCmd) Run(g *Global) error {
	params, err := ParseSetFlags(e.Set)
	if err != nil {
		return err
	}

	out, err := g.Engine().Eval(params)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Stdout, out)
	return err
}

// ParseSetFlags turns key=value flags into an option set. Values may contain '='.
func ParseSetFlags(flags []string) (pipeline.Strings, error) {
	params := make(pipeline.Strings, len(flags))
	for _, flag := range flags {
		key, value, ok := strings.Cut(flag, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, ferrors.ValidationError(fmt.Sprintf("invalid --set %q, expected KEY=VALUE", flag)).Build()
		}
		if _, dup := params[key]; dup {
			return nil, ferrors.ValidationError(fmt.Sprintf("option %q given more than once", key)).ForParameter(key).Build()
		}
		params[key] = value
	}
	return params, nil
}
