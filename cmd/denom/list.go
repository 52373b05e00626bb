package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/prymitive/denom"
)

var listCmd = &cli.Command{
	Name:  "list",
	Usage: "Print decomposed magnitudes, largest unit first",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    unitsFlag,
			Aliases: []string{"u"},
			Value:   "time",
			Usage:   "Denomination to use: a shortcut name, a config denomination, an inline chain or bare ratios",
		},
		&cli.BoolFlag{
			Name:  jsonFlag,
			Value: false,
			Usage: "Print magnitudes as a JSON array",
		},
	},
	Action: actionList,
}

func actionList(c *cli.Context) (err error) {
	meta, err := actionSetup(c)
	if err != nil {
		return err
	}

	quantity, err := parseQuantity(c)
	if err != nil {
		return err
	}

	list, err := denom.List(quantity, resolveUnits(meta.cfg, c.String(unitsFlag)))
	if err != nil {
		return err
	}

	if c.Bool(jsonFlag) {
		data, err := json.Marshal(list)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	values := make([]string, 0, len(list))
	for _, magnitude := range list {
		values = append(values, strconv.FormatInt(magnitude, 10))
	}
	fmt.Println(strings.Join(values, " "))

	return nil
}
