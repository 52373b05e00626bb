package denom

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Builtin denominations. Each entry is the same alternating unit/ratio list
// that Units accepts, base unit first. These chains are part of the public
// contract, changing any name or ratio here breaks existing callers.
var shortcuts = map[string]unitList{
	"time":            {"second", 60, "minute", 60, "hour", 24, "day", 7, "week"},
	"weight":          {"gram", 1000, "kilogram", 1000, "tonne"},
	"weight_imperial": {"ounce", 16, "pound", 14, "stone", 160, "ton"},
	"length":          {"meter", 1000, "kilometer", 9460730472.5808, "light year"},
	"length_mm":       {"millimeter", 10, "centimeter", 100, "meter", 1000, "kilometer", 9460730472.5808, "light year"},
	"length_imperial": {Unit{Singular: "inch", Plural: "inches"}, 12, Unit{Singular: "foot", Plural: "feet"}, 3, "yard", 1760, Unit{Singular: "mile", Plural: "miles"}},
	"volume":          {"milliliter", 1000, "Liter"},
	"volume_imperial": {"fluid ounce", 20, "pint", 2, "quart", 4, "gallon"},
	"info": {
		"bit", 8, "byte",
		1000, "kilobyte",
		1000, "megabyte",
		1000, "gigabyte",
		1000, "terabyte",
		1000, "petabyte",
		1000, "exabyte",
		1000, "zettabyte",
		1000, "yottabyte",
	},
	"info_1024": {
		"bit", 8, "byte",
		1024, "kibibyte",
		1024, "mebibyte",
		1024, "gibibyte",
		1024, "tebibyte",
		1024, "pebibyte",
		1024, "exbibyte",
		1024, "zebibyte",
		1024, "yobibyte",
	},
}

// Names returns the identifiers of all builtin denominations, sorted.
func Names() []string {
	names := make([]string, 0, len(shortcuts))
	for name := range shortcuts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Chain returns the units and ratios of a builtin denomination, base unit
// first. There is one ratio less than there are units.
func Chain(name string) (units []Unit, ratios []float64, err error) {
	list, ok := shortcuts[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownShortcut, name)
	}
	c, err := list.parse()
	if err != nil {
		return nil, nil, err
	}
	return c.units, c.ratios, nil
}
