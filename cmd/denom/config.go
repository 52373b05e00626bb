package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var configCmd = &cli.Command{
	Name:   "config",
	Usage:  "Print the effective configuration and exit",
	Action: actionConfig,
}

func actionConfig(c *cli.Context) (err error) {
	meta, err := actionSetup(c)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, meta.cfg.String())

	return nil
}
