package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/prymitive/denom"
	"github.com/prymitive/denom/internal/config"
)

func TestResolveUnits(t *testing.T) {
	ratio := 1474560.0
	cfg := config.Config{
		Denominations: []config.Denomination{
			{
				Name: "floppies",
				Units: []config.Unit{
					{Name: "byte", Ratio: &ratio},
					{Name: "floppy", Plural: "floppies"},
				},
			},
		},
	}

	type testCaseT struct {
		description string
		units       string
		output      string
		err         string
		quantity    float64
	}

	testCases := []testCaseT{
		{
			description: "config denomination",
			units:       "floppies",
			quantity:    2949121,
			output:      "2 floppies and 1 byte",
		},
		{
			description: "builtin shortcut",
			units:       "time",
			quantity:    32223,
			output:      "8 hours, 57 minutes, and 3 seconds",
		},
		{
			description: "inline chain",
			units:       "second,60,minute,60,hour",
			quantity:    7325,
			output:      "2 hours, 2 minutes, and 5 seconds",
		},
		{
			description: "inline chain with spelled out plurals",
			units:       "inch=inches,12,foot=feet",
			quantity:    26,
			output:      "2 feet and 2 inches",
		},
		{
			description: "inline chain with spaces",
			units:       "second, 60, minute",
			quantity:    61,
			output:      "1 minute and 1 second",
		},
		{
			description: "unknown name",
			units:       "bogus",
			quantity:    1,
			err:         `unknown denomination shortcut: "bogus"`,
		},
		{
			description: "chain with a unit in a ratio position",
			units:       "second,minute",
			quantity:    1,
			err:         "invalid denomination: element 1: expected a ratio, got string",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			output, err := denom.String(tc.quantity, resolveUnits(cfg, tc.units))
			if tc.err != "" {
				require.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.output, output)
		})
	}
}

func TestResolveUnitsRatios(t *testing.T) {
	list, err := denom.List(32223, resolveUnits(config.Config{}, "60,60"))
	require.NoError(t, err)
	require.Equal(t, []int64{8, 57, 3}, list)

	list, err = denom.List(61.5, resolveUnits(config.Config{}, "60"))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 1}, list)
}

func TestParseQuantity(t *testing.T) {
	type testCaseT struct {
		description string
		err         string
		args        []string
		quantity    float64
	}

	testCases := []testCaseT{
		{
			description: "no arguments",
			args:        []string{},
			err:         "a quantity argument is required",
		},
		{
			description: "too many arguments",
			args:        []string{"1", "2"},
			err:         "exactly one quantity argument is required, got 2",
		},
		{
			description: "not a number",
			args:        []string{"abc"},
			err:         `"abc" is not a valid quantity`,
		},
		{
			description: "integer",
			args:        []string{"85703"},
			quantity:    85703,
		},
		{
			description: "fraction",
			args:        []string{"12.5"},
			quantity:    12.5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			fs := flag.NewFlagSet("denom", flag.ContinueOnError)
			require.NoError(t, fs.Parse(tc.args))
			c := cli.NewContext(nil, fs, nil)

			quantity, err := parseQuantity(c)
			if tc.err != "" {
				require.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.quantity, quantity)
		})
	}
}
