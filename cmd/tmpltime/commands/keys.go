package commands

import (
	"fmt"

	"git.home.luguber.info/inful/tmpltime/internal/pipeline"
)

// KeysCmd implements the 'keys' command.
type KeysCmd struct{}

func (k *KeysCmd) Run(g *Global) error {
	for _, stage := range pipeline.Stages() {
		if _, err := fmt.Fprintf(g.Stdout, "%s:\n", stage.Name); err != nil {
			return err
		}
		for _, key := range stage.Keys {
			if _, err := fmt.Fprintf(g.Stdout, "  %s\n", key); err != nil {
				return err
			}
		}
	}
	return nil
}

// LocalesCmd implements the 'locales' command.
type LocalesCmd struct{}

func (l *LocalesCmd) Run(g *Global) error {
	if g.Config != nil && !g.Config.Capabilities.LocalesEnabled() {
		g.logger().Warn("Localized formatting is disabled by configuration")
	}
	for _, locale := range pipeline.SupportedLocales() {
		if _, err := fmt.Fprintln(g.Stdout, locale); err != nil {
			return err
		}
	}
	return nil
}
