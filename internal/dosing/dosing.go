// Package dosing computes fuel stabilizer doses.
package dosing

import "github.com/san-kum/sonarlab/internal/formula"

// Ratio is a stabilizer treat rate and the volume of one drop.
type Ratio struct {
	StabilizerMl float64 `json:"stabilizer_ml" yaml:"stabilizer_ml"`
	PerFuelL     float64 `json:"per_fuel_l" yaml:"per_fuel_l"`
	MlPerDrop    float64 `json:"ml_per_drop" yaml:"ml_per_drop"`
}

// DefaultRatio is 25 ml per 20 L of fuel with 0.05 ml drops.
var DefaultRatio = Ratio{StabilizerMl: 25, PerFuelL: 20, MlPerDrop: 0.05}

// Dose is the amount of stabilizer for a volume of fuel.
type Dose struct {
	Milliliters float64 `json:"milliliters"`
	Drops       float64 `json:"drops"`
}

// FuelStabilizer returns the dose for fuelLiters at DefaultRatio.
func FuelStabilizer(fuelLiters float64) Dose {
	return FuelStabilizerWith(fuelLiters, DefaultRatio)
}

// FuelStabilizerWith returns the dose for fuelLiters at r.
func FuelStabilizerWith(fuelLiters float64, r Ratio) Dose {
	ml := fuelLiters * r.StabilizerMl / r.PerFuelL
	return Dose{Milliliters: ml, Drops: ml / r.MlPerDrop}
}

// Specs returns the catalog entries of this package.
func Specs() []*formula.Spec {
	return []*formula.Spec{
		{
			Name:     "FuelStabilizer",
			Category: "dosing",
			Summary:  "stabilizer dose at 25 ml per 20 L, in ml and 0.05 ml drops",
			Params: []formula.Param{
				{Name: "fuelLiters", Unit: "L", Role: "volume", Default: 20, Range: formula.Window(0, 1e6)},
			},
			Outputs: []formula.Output{
				{Name: "milliliters", Unit: "ml"},
				{Name: "drops", Unit: "drops"},
			},
			Citation: "Manufacturer treat rate: 1 oz (about 25 ml) per 5 US gal (about 20 L).",
			Eval: func(x []float64) ([]float64, []formula.Diagnostic, error) {
				d := FuelStabilizer(x[0])
				return []float64{d.Milliliters, d.Drops}, nil, nil
			},
		},
	}
}
