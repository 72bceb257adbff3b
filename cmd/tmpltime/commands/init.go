package commands

import (
	"fmt"

	"git.home.luguber.info/inful/tmpltime/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global) error {
	if err := config.Init(g.ConfigPath, i.Force); err != nil {
		return err
	}
	_, err := fmt.Fprintf(g.Stdout, "Wrote configuration to %s\n", g.ConfigPath)
	return err
}
