package denom

import (
	"fmt"
	"math"
	"strconv"
)

// Unit is one step of a denomination. Plural can be left empty, it then
// defaults to Singular with a trailing "s".
type Unit struct {
	Singular string
	Plural   string
}

// Denomination describes how a quantity should be split into units.
// The three implementations are created with Shortcut, Units and Ratios;
// each is validated once, when it's first used.
type Denomination interface {
	resolve() (resolved, error)
}

// Shortcut references one of the builtin denominations by name, for example
// "time" or "info_1024". See Names for the full registry.
func Shortcut(name string) Denomination {
	return shortcutRef(name)
}

// Units builds a denomination from an alternating list of units and ratios:
// base unit first, then the ratio to the next larger unit, then that unit,
// and so on, always ending on a unit. A unit is either a string (plural
// inferred) or a Unit value (used verbatim). A ratio is an int, int64 or
// float64 and says how many of the previous unit make up the next one.
//
//	denom.Units("second", 60, "minute", 60, "hour")
//	denom.Units(denom.Unit{Singular: "inch", Plural: "inches"}, 12, denom.Unit{Singular: "foot", Plural: "feet"})
func Units(parts ...any) Denomination {
	return unitList(parts)
}

// Ratios builds an anonymous denomination from bare conversion ratios.
// The units have no meaningful names, so the result can only be rendered
// with List.
func Ratios(ratios ...float64) Denomination {
	return ratioList(ratios)
}

type shortcutRef string

func (s shortcutRef) resolve() (resolved, error) {
	list, ok := shortcuts[string(s)]
	if !ok {
		return resolved{}, fmt.Errorf("%w: %q", ErrUnknownShortcut, string(s))
	}
	return list.resolve()
}

type unitList []any

func (u unitList) resolve() (resolved, error) {
	c, err := u.parse()
	if err != nil {
		return resolved{}, err
	}
	return resolved{units: c.scaled()}, nil
}

// parse validates the alternating unit/ratio list and splits it into units
// and ratios, both ordered base unit first.
func (u unitList) parse() (c chain, err error) {
	if len(u) == 0 {
		return c, fmt.Errorf("%w: no units given", ErrInvalidDenomination)
	}
	if len(u)%2 == 0 {
		return c, fmt.Errorf("%w: the list must end on a unit, not a ratio", ErrInvalidDenomination)
	}
	for i, part := range u {
		if i%2 == 0 {
			unit, err := parseUnit(part)
			if err != nil {
				return c, fmt.Errorf("%w: element %d: %s", ErrInvalidDenomination, i, err)
			}
			c.units = append(c.units, unit)
			continue
		}
		ratio, err := parseRatio(part)
		if err != nil {
			return c, fmt.Errorf("%w: element %d: %s", ErrInvalidDenomination, i, err)
		}
		c.ratios = append(c.ratios, ratio)
	}
	return c, nil
}

type ratioList []float64

func (r ratioList) resolve() (resolved, error) {
	c := chain{
		units:  make([]Unit, 0, len(r)+1),
		ratios: make([]float64, 0, len(r)),
	}
	for i, ratio := range r {
		if !isPositive(ratio) {
			return resolved{}, fmt.Errorf("%w: element %d: ratio must be a positive number", ErrInvalidDenomination, i)
		}
		c.units = append(c.units, Unit{Singular: strconv.Itoa(i + 1)}.withDefaultPlural())
		c.ratios = append(c.ratios, ratio)
	}
	c.units = append(c.units, Unit{Singular: "last"}.withDefaultPlural())
	return resolved{units: c.scaled(), listOnly: true}, nil
}

// chain is a validated denomination before scaling: units and the ratios
// between them, base unit first. There is always one ratio less than there
// are units, the largest unit absorbs whatever is left over.
type chain struct {
	units  []Unit
	ratios []float64
}

// scaled turns the chain into the form decompose wants: every unit paired
// with its divisor (the product of all smaller units' ratios), ordered
// largest divisor first.
func (c chain) scaled() []scaledUnit {
	units := make([]scaledUnit, len(c.units))
	divisor := 1.0
	for i, unit := range c.units {
		if i > 0 {
			divisor *= c.ratios[i-1]
		}
		units[len(units)-1-i] = scaledUnit{unit: unit, divisor: divisor}
	}
	return units
}

type scaledUnit struct {
	unit    Unit
	divisor float64
}

// resolved is the canonical form every Denomination reduces to.
type resolved struct {
	units    []scaledUnit
	listOnly bool
}

func resolve(d Denomination) (resolved, error) {
	if d == nil {
		return resolved{}, fmt.Errorf("%w: no denomination given", ErrInvalidDenomination)
	}
	return d.resolve()
}

func (u Unit) withDefaultPlural() Unit {
	if u.Plural == "" {
		u.Plural = u.Singular + "s"
	}
	return u
}

func parseUnit(part any) (Unit, error) {
	switch v := part.(type) {
	case string:
		if v == "" {
			return Unit{}, fmt.Errorf("unit name cannot be empty")
		}
		return Unit{Singular: v}.withDefaultPlural(), nil
	case Unit:
		if v.Singular == "" {
			return Unit{}, fmt.Errorf("unit name cannot be empty")
		}
		return v.withDefaultPlural(), nil
	default:
		return Unit{}, fmt.Errorf("expected a unit name, got %T", part)
	}
}

func parseRatio(part any) (float64, error) {
	var ratio float64
	switch v := part.(type) {
	case int:
		ratio = float64(v)
	case int64:
		ratio = float64(v)
	case float64:
		ratio = v
	default:
		return 0, fmt.Errorf("expected a ratio, got %T", part)
	}
	if !isPositive(ratio) {
		return 0, fmt.Errorf("ratio must be a positive number")
	}
	return ratio, nil
}

func isPositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1) && !math.IsNaN(f)
}
