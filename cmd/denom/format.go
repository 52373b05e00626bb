package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/prymitive/denom"
)

var formatCmd = &cli.Command{
	Name:  "format",
	Usage: "Format a quantity as a human readable string",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    unitsFlag,
			Aliases: []string{"u"},
			Value:   "time",
			Usage:   "Denomination to use: a shortcut name, a config denomination or an inline chain",
		},
	},
	Action: actionFormat,
}

func actionFormat(c *cli.Context) (err error) {
	meta, err := actionSetup(c)
	if err != nil {
		return err
	}

	quantity, err := parseQuantity(c)
	if err != nil {
		return err
	}

	out, err := denom.String(quantity, resolveUnits(meta.cfg, c.String(unitsFlag)))
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}
