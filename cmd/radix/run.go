package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/js-arias/radix/internal/cmdlogger"
	"github.com/urfave/cli/v3"
)

// env is what the subcommands share.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger
	logs   *cmdlogger.Handler
}

type commandBuilder = func(e *env) *cli.Command

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logHandler := cmdlogger.New(stdout, stderr)
	e := &env{
		stdin:  stdin,
		stdout: stdout,
		logger: slog.New(logHandler),
		logs:   logHandler,
	}

	builders := []commandBuilder{
		prefixCommand,
		listCommand,
		dumpCommand,
		statsCommand,
	}
	cmds := make([]*cli.Command, 0, len(builders))
	for _, b := range builders {
		cmds = append(cmds, b(e))
	}

	app := &cli.Command{
		Name:      "radix",
		Usage:     "loads keys into a radix tree and queries it",
		Suggest:   true,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:      "file",
				Aliases:   []string{"f"},
				Usage:     "load keys from `FILE`, one per line with an optional TAB separated value; - reads stdin",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "verbosity",
				Usage: "log level, one of: error, warn, info, debug",
				Value: "info",
			},
		},
		Commands: cmds,
	}

	// errors are reported below, not by the default exit handler
	app.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}

	if err := app.Run(context.Background(), args); err != nil {
		e.logger.Error(err.Error())
	}

	if logHandler.HasErrored() {
		return 127
	}

	return 0
}
