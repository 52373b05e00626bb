package config

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/prymitive/denom"
)

type Unit struct {
	Ratio  *float64 `hcl:"ratio,optional" json:"ratio,omitempty"`
	Name   string   `hcl:"name" json:"name"`
	Plural string   `hcl:"plural,optional" json:"plural,omitempty"`
}

type Denomination struct {
	Name  string `hcl:",label" json:"name"`
	Units []Unit `hcl:"unit,block" json:"units"`
}

func (d Denomination) validate() error {
	if d.Name == "" {
		return errors.New("denomination name cannot be empty")
	}
	if slices.Contains(denom.Names(), d.Name) {
		return fmt.Errorf("%q is a builtin denomination and cannot be redefined", d.Name)
	}
	if len(d.Units) == 0 {
		return fmt.Errorf("denomination %q must define at least one unit", d.Name)
	}
	for i, u := range d.Units {
		if u.Name == "" {
			return fmt.Errorf("denomination %q: unit name cannot be empty", d.Name)
		}
		if i == len(d.Units)-1 {
			if u.Ratio != nil {
				return fmt.Errorf("denomination %q: the last unit cannot set a ratio", d.Name)
			}
			continue
		}
		if u.Ratio == nil {
			return fmt.Errorf("denomination %q: unit %q must set a ratio", d.Name, u.Name)
		}
		if r := *u.Ratio; r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("denomination %q: unit %q ratio must be a positive number", d.Name, u.Name)
		}
	}
	return nil
}

// Parts returns the block as the alternating unit and ratio list that
// denom.Units accepts, base unit first. Call it only on a validated block.
func (d Denomination) Parts() []any {
	parts := make([]any, 0, len(d.Units)*2)
	for i, u := range d.Units {
		parts = append(parts, denom.Unit{Singular: u.Name, Plural: u.Plural})
		if i < len(d.Units)-1 {
			parts = append(parts, *u.Ratio)
		}
	}
	return parts
}
