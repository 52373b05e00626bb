package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/prymitive/denom"
	"github.com/prymitive/denom/internal/config"
	"github.com/prymitive/denom/internal/output"
)

var shortcutsCmd = &cli.Command{
	Name:   "shortcuts",
	Usage:  "List known denominations and their unit chains",
	Action: actionShortcuts,
}

func actionShortcuts(c *cli.Context) (err error) {
	meta, err := actionSetup(c)
	if err != nil {
		return err
	}
	noColor := c.Bool(noColorFlag)

	for _, name := range denom.Names() {
		units, ratios, err := denom.Chain(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", output.MaybeColor(output.Cyan, noColor, "%s", name), describeChain(units, ratios))
	}

	for _, d := range meta.cfg.Denominations {
		fmt.Printf("%s: %s\n", output.MaybeColor(output.Yellow, noColor, "%s", d.Name), describeCustom(d))
	}

	return nil
}

func describeChain(units []denom.Unit, ratios []float64) string {
	var b strings.Builder
	for i, u := range units {
		if i > 0 {
			b.WriteString(", ")
			b.WriteString(formatRatio(ratios[i-1]))
			b.WriteString(", ")
		}
		b.WriteString(u.Singular)
	}
	return b.String()
}

func describeCustom(d config.Denomination) string {
	var b strings.Builder
	for i, u := range d.Units {
		if i > 0 {
			b.WriteString(", ")
			b.WriteString(formatRatio(*d.Units[i-1].Ratio))
			b.WriteString(", ")
		}
		b.WriteString(u.Name)
	}
	return b.String()
}

func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
