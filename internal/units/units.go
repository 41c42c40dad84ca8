// Package units converts the pressure and length units used by the formula
// catalog. Conversions go through SI and are checked for matching
// dimensions with github.com/ctessum/unit.
package units

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ctessum/unit"
)

var (
	ErrUnknownUnit  = errors.New("units: unknown unit")
	ErrIncompatible = errors.New("units: incompatible dimensions")
)

var pascal = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2}

type def struct {
	dims   unit.Dimensions
	factor float64 // SI value of one unit
}

var defs = map[string]def{
	"Pa":     {pascal, 1},
	"kPa":    {pascal, 1e3},
	"MPa":    {pascal, 1e6},
	"bar":    {pascal, 1e5},
	"dbar":   {pascal, 1e4},
	"atm":    {pascal, 101325},
	"kg/cm2": {pascal, 98066.5},
	"psi":    {pascal, 6894.757293168},
	"m":      {unit.Meter, 1},
	"km":     {unit.Meter, 1e3},
	"ft":     {unit.Meter, 0.3048},
	"fathom": {unit.Meter, 1.8288},
	"nmi":    {unit.Meter, 1852},
}

var aliases = map[string]string{
	"kgcm2":  "kg/cm2",
	"kg/cm²": "kg/cm2",
	"meter":  "m",
	"metre":  "m",
}

func lookup(name string) (string, def, error) {
	n := strings.TrimSpace(name)
	if a, ok := aliases[strings.ToLower(n)]; ok {
		n = a
	}
	d, ok := defs[n]
	if !ok {
		return "", def{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return n, d, nil
}

// Convert returns value expressed in unit from as unit to.
func Convert(value float64, from, to string) (float64, error) {
	_, src, err := lookup(from)
	if err != nil {
		return 0, err
	}
	_, dst, err := lookup(to)
	if err != nil {
		return 0, err
	}
	u := unit.New(value*src.factor, src.dims)
	if err := u.Check(dst.dims); err != nil {
		return 0, fmt.Errorf("%w: %s to %s: %v", ErrIncompatible, from, to, err)
	}
	return u.Value() / dst.factor, nil
}

// Known returns the supported unit symbols, sorted.
func Known() []string {
	names := make([]string, 0, len(defs))
	for n := range defs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsPressure reports whether name is a supported pressure unit.
func IsPressure(name string) bool {
	_, d, err := lookup(name)
	return err == nil && d.dims.Matches(pascal)
}
