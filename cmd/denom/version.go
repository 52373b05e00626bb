package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Overridden with -ldflags when building a release.
var (
	version = "unknown"
	commit  = "unknown"
)

var versionCmd = &cli.Command{
	Name:   "version",
	Usage:  "Print version and exit",
	Action: actionVersion,
}

func actionVersion(_ *cli.Context) error {
	fmt.Printf("%s (revision: %s)\n", version, commit)
	return nil
}
