package depth

import "github.com/san-kum/sonarlab/internal/formula"

const category = "pressure/depth"

const leroyParthiot = "C. C. Leroy and F. Parthiot, Depth-pressure relationships in the oceans and seas, J. Acoust. Soc. Am. 103(3), 1346-1352 (1998)."

func latitude() formula.Param {
	return formula.Param{Name: "latitudeDeg", Unit: "deg", Role: "latitude", Default: 45, Range: formula.Window(-90, 90)}
}

// Specs returns the catalog entries of this package.
func Specs() []*formula.Spec {
	return []*formula.Spec{
		{
			Name:     "DepthToPressureLeroyParthiot",
			Category: category,
			Summary:  "standard-ocean pressure from depth; accepts a regional correction",
			Params: []formula.Param{
				{Name: "depthM", Unit: "m", Role: "depth", Default: 1000, Range: formula.Window(0, 10000)},
				latitude(),
			},
			Outputs:     formula.Scalar("pressure", "MPa"),
			Citation:    leroyParthiot,
			Correctable: true,
			Eval:        formula.Fn2(DepthToPressureLeroyParthiot),
		},
		{
			Name:     "PressureToDepthLeroyParthiot",
			Category: category,
			Summary:  "standard-ocean depth from pressure; accepts a regional correction",
			Params: []formula.Param{
				{Name: "pressureMPa", Unit: "MPa", Role: "pressure", Default: 10, Range: formula.Window(0, 110)},
				latitude(),
			},
			Outputs:     formula.Scalar("depth", "m"),
			Citation:    leroyParthiot,
			Correctable: true,
			Eval:        formula.Fn2(PressureToDepthLeroyParthiot),
		},
		{
			Name:     "DepthToPressureSaunders",
			Category: category,
			Summary:  "pressure from depth, Saunders (1981)",
			Params: []formula.Param{
				{Name: "depthM", Unit: "m", Role: "depth", Default: 1000, Range: formula.Window(0, 10000)},
				latitude(),
			},
			Outputs:  formula.Scalar("pressure", "dbar"),
			Citation: "P. M. Saunders, Practical conversion of pressure to depth, J. Phys. Oceanogr. 11, 573-574 (1981).",
			Eval:     formula.Fn2(DepthToPressureSaunders),
		},
		{
			Name:     "PressureToDepthUNESCO",
			Category: category,
			Summary:  "depth from pressure, UNESCO algorithm",
			Params: []formula.Param{
				{Name: "pressureDbar", Unit: "dbar", Role: "pressure", Default: 1000, Range: formula.Window(0, 11000)},
				latitude(),
			},
			Outputs:  formula.Scalar("depth", "m"),
			Citation: "N. P. Fofonoff and R. C. Millard, Algorithms for computation of fundamental properties of seawater, UNESCO Tech. Pap. Mar. Sci. 44 (1983).",
			Eval:     formula.Fn2(PressureToDepthUNESCO),
		},
		{
			Name:     "PressureHydrostatic",
			Category: category,
			Summary:  "ρ·g·z",
			Params: []formula.Param{
				{Name: "depthM", Unit: "m", Role: "depth", Default: 10},
				{Name: "densityKgM3", Unit: "kg/m³", Role: "density", Default: 1025},
				{Name: "gravityMS2", Unit: "m/s²", Role: "gravity", Default: 9.80665},
			},
			Outputs:  formula.Scalar("pressure", "Pa"),
			Citation: "Hydrostatic equation.",
			Eval:     formula.Fn3(PressureHydrostatic),
		},
		{
			Name:     "GravityAtLatitude",
			Category: category,
			Summary:  "International Gravity Formula",
			Params:   []formula.Param{latitude()},
			Outputs:  formula.Scalar("gravity", "m/s²"),
			Citation: "N. P. Fofonoff and R. C. Millard, UNESCO Tech. Pap. Mar. Sci. 44 (1983).",
			Eval:     formula.Fn1(GravityAtLatitude),
		},
	}
}
