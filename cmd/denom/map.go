package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/prymitive/denom"
)

var mapCmd = &cli.Command{
	Name:  "map",
	Usage: "Print decomposed magnitudes keyed by unit name",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    unitsFlag,
			Aliases: []string{"u"},
			Value:   "time",
			Usage:   "Denomination to use: a shortcut name, a config denomination or an inline chain",
		},
		&cli.BoolFlag{
			Name:  jsonFlag,
			Value: false,
			Usage: "Print magnitudes as a JSON object",
		},
	},
	Action: actionMap,
}

func actionMap(c *cli.Context) (err error) {
	meta, err := actionSetup(c)
	if err != nil {
		return err
	}

	quantity, err := parseQuantity(c)
	if err != nil {
		return err
	}

	den := resolveUnits(meta.cfg, c.String(unitsFlag))

	if c.Bool(jsonFlag) {
		m, err := denom.Map(quantity, den)
		if err != nil {
			return err
		}
		data, err := json.Marshal(m)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	parts, err := denom.Decompose(quantity, den)
	if err != nil {
		return err
	}
	for _, p := range parts {
		fmt.Printf("%s=%d\n", p.Unit.Singular, p.Magnitude)
	}

	return nil
}
