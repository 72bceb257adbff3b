package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/tmpltime/cmd/tmpltime/commands"
	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
	"git.home.luguber.info/inful/tmpltime/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("tmpltime"),
		kong.Description("Evaluate and render the datetime template helper."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	global, err := commands.NewGlobal(cli)
	if err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
		return
	}

	err = parser.Run(global)
	if flushErr := global.FlushMetrics(); err == nil {
		err = flushErr
	}
	if err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
	}
}
