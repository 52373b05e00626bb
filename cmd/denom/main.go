package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/automaxprocs/maxprocs"
)

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
	noColorFlag  = "no-color"
	unitsFlag    = "units"
	jsonFlag     = "json"
)

func newApp() *cli.App {
	return &cli.App{
		Usage: "Break quantities down into human friendly unit lists",
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Value:   ".denom.hcl",
				Usage:   "Configuration file to use",
			},
			&cli.StringFlag{
				Name:    logLevelFlag,
				Aliases: []string{"l"},
				Value:   slog.LevelInfo.String(),
				Usage:   "Log level",
			},
			&cli.BoolFlag{
				Name:    noColorFlag,
				Aliases: []string{"n"},
				Value:   false,
				Usage:   "Disable output colouring",
			},
		},
		Commands: []*cli.Command{
			versionCmd,
			formatCmd,
			listCmd,
			mapCmd,
			shortcutsCmd,
			batchCmd,
			configCmd,
		},
	}
}

func main() {
	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		slog.Debug(fmt.Sprintf(format, args...))
	}))
	defer undo()
	if err != nil {
		slog.Error("Failed to set GOMAXPROCS", slog.Any("err", err))
	}

	app := newApp()
	if err = app.Run(os.Args); err != nil {
		slog.Error("Execution completed with error(s)", slog.Any("err", err))
		os.Exit(1)
	}
}
