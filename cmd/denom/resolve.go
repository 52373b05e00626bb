package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/prymitive/denom"
	"github.com/prymitive/denom/internal/config"
)

// resolveUnits turns a units argument into a denomination. Custom config
// denominations are tried first. Anything with a comma in it, and anything
// numeric, is read as an inline chain. Everything else is treated as a
// builtin shortcut name.
func resolveUnits(cfg config.Config, s string) denom.Denomination {
	if d, ok := cfg.Denomination(s); ok {
		return denom.Units(d.Parts()...)
	}
	if strings.Contains(s, ",") || isNumber(s) {
		return parseChain(s)
	}
	return denom.Shortcut(s)
}

// parseChain reads the inline chain syntax: a comma separated alternating
// list of units and ratios, base unit first, with "name=plural" spelling
// out an irregular plural. A chain of numbers alone is the bare ratio
// shorthand. Validation is left to the denom package.
func parseChain(s string) denom.Denomination {
	fields := strings.Split(s, ",")

	ratios := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			break
		}
		ratios = append(ratios, v)
	}
	if len(ratios) == len(fields) {
		return denom.Ratios(ratios...)
	}

	parts := make([]any, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			parts = append(parts, v)
			continue
		}
		if name, plural, found := strings.Cut(f, "="); found {
			parts = append(parts, denom.Unit{Singular: name, Plural: plural})
			continue
		}
		parts = append(parts, f)
	}
	return denom.Units(parts...)
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func parseQuantity(c *cli.Context) (float64, error) {
	args := c.Args().Slice()
	if len(args) == 0 {
		return 0, fmt.Errorf("a quantity argument is required")
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("exactly one quantity argument is required, got %d", len(args))
	}
	q, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid quantity", args[0])
	}
	return q, nil
}
