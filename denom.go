// Package denom breaks a numeric quantity down into a chain of units with
// fixed conversion ratios and formats the result for humans.
//
// A chain of units is called a denomination. It can be one of the builtin
// shortcuts:
//
//	s, err := denom.String(32223, denom.Shortcut("time"))
//	// "8 hours, 57 minutes, and 3 seconds"
//
// or spelled out as an alternating list of unit names and ratios, starting
// with the base unit:
//
//	s, err := denom.String(85703, denom.Units("second", 60, "minute", 60, "hour", 24, "day", 7, "week"))
//	// "23 hours, 48 minutes, and 23 seconds"
//
// or, when only the magnitudes matter, given as bare ratios:
//
//	l, err := denom.List(32223, denom.Ratios(60, 60))
//	// []int64{8, 57, 3}
//
// Negative quantities are treated as their absolute value. Units that end up
// with a zero magnitude are omitted from every kind of output, so a quantity
// of zero formats as an empty string, list or map.
package denom

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownShortcut is returned when a Shortcut denomination names
	// an identifier missing from the builtin registry.
	ErrUnknownShortcut = errors.New("unknown denomination shortcut")

	// ErrInvalidDenomination is returned when a denomination is malformed
	// or used with an output mode it doesn't support.
	ErrInvalidDenomination = errors.New("invalid denomination")
)

// Part is a single entry of a decomposed quantity: one unit and the integer
// number of times it fits.
type Part struct {
	Unit      Unit
	Magnitude int64
}

// String renders the part as "<magnitude> <unit>", picking the singular unit
// name when the magnitude is exactly one.
func (p Part) String() string {
	name := p.Unit.Plural
	if p.Magnitude == 1 {
		name = p.Unit.Singular
	}
	return fmt.Sprintf("%d %s", p.Magnitude, name)
}

// Decompose splits quantity across the units of d, largest unit first.
// Every returned part has a non-zero magnitude; a quantity smaller than the
// base unit yields no parts at all.
// Ratios denominations carry placeholder unit names and are only accepted
// by List.
func Decompose(quantity float64, d Denomination) ([]Part, error) {
	den, err := resolve(d)
	if err != nil {
		return nil, err
	}
	if den.listOnly {
		return nil, fmt.Errorf("%w: a bare ratio list can only be used with List", ErrInvalidDenomination)
	}
	return decompose(quantity, den.units), nil
}

// String formats quantity as a human-readable list of units, for example
// "1 hour, 2 minutes, and 5 seconds". Parts are joined the way a human would
// write them: two parts with a plain "and", three or more with commas and a
// trailing "and". A quantity of zero produces an empty string.
func String(quantity float64, d Denomination) (string, error) {
	parts, err := Decompose(quantity, d)
	if err != nil {
		return "", err
	}
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		words = append(words, p.String())
	}
	return humanJoin(words), nil
}

// List returns just the magnitudes of the decomposed quantity, largest unit
// first, with zero magnitudes left out.
func List(quantity float64, d Denomination) ([]int64, error) {
	den, err := resolve(d)
	if err != nil {
		return nil, err
	}
	parts := decompose(quantity, den.units)
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.Magnitude)
	}
	return out, nil
}

// Map returns the decomposed quantity keyed by each unit's singular name.
// Units with a zero magnitude are absent. If two units share a singular name
// the smaller unit wins, since entries are written largest to smallest.
func Map(quantity float64, d Denomination) (map[string]int64, error) {
	parts, err := Decompose(quantity, d)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(parts))
	for _, p := range parts {
		out[p.Unit.Singular] = p.Magnitude
	}
	return out, nil
}

func decompose(quantity float64, units []scaledUnit) (parts []Part) {
	remaining := math.Abs(quantity)
	if math.IsNaN(remaining) || math.IsInf(remaining, 0) {
		return nil
	}
	for _, su := range units {
		magnitude := math.Trunc(remaining / su.divisor)
		if magnitude <= 0 {
			continue
		}
		remaining -= magnitude * su.divisor
		parts = append(parts, Part{Unit: su.unit, Magnitude: clampMagnitude(magnitude)})
	}
	return parts
}

// clampMagnitude converts a truncated positive float64 to int64. Values of
// 2^63 or more don't fit and are capped at MaxInt64.
func clampMagnitude(f float64) int64 {
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}
