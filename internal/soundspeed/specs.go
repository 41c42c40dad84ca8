package soundspeed

import "github.com/san-kum/sonarlab/internal/formula"

const category = "speed of sound"

func tempParam(def float64, r *formula.Range) formula.Param {
	return formula.Param{Name: "temperatureC", Unit: "°C", Role: "temperature", Default: def, Range: r}
}

func salParam(r *formula.Range) formula.Param {
	return formula.Param{Name: "salinityPpt", Unit: "ppt", Role: "salinity", Default: 35, Range: r}
}

func depthParam(def float64, r *formula.Range) formula.Param {
	return formula.Param{Name: "depthM", Unit: "m", Role: "depth", Default: def, Range: r}
}

func speed() []formula.Output {
	return formula.Scalar("speed", "m/s")
}

// Specs returns the catalog entries of this package.
func Specs() []*formula.Spec {
	return []*formula.Spec{
		{
			Name:     "SpeedOfSoundDryAir",
			Category: category,
			Summary:  "dry air, c = 20.05·sqrt(T + 273.16)",
			Params:   []formula.Param{tempParam(20, nil)},
			Outputs:  speed(),
			Citation: "Kinsler, Frey, Coppens and Sanders, Fundamentals of Acoustics, 4th ed. (2000).",
			Eval:     formula.Fn1(DryAir),
		},
		{
			Name:     "SpeedOfSoundAirIdealGas",
			Category: category,
			Summary:  "dry air as an ideal diatomic gas, c = sqrt(γRT/M)",
			Params:   []formula.Param{tempParam(20, nil)},
			Outputs:  speed(),
			Citation: "Pierce, Acoustics: An Introduction to Its Physical Principles and Applications (1989).",
			Eval:     formula.Fn1(AirIdealGas),
		},
		{
			Name:     "SpeedOfSoundAirCramer",
			Category: category,
			Summary:  "humid air with CO2, Cramer (1993)",
			Params: []formula.Param{
				tempParam(20, formula.Window(0, 30)),
				{Name: "pressurePa", Unit: "Pa", Role: "pressure", Default: 101325, Range: formula.Window(60000, 110000)},
				{Name: "waterMoleFraction", Unit: "-", Role: "humidity", Default: 0, Range: formula.Window(0, 0.06)},
				{Name: "co2MoleFraction", Unit: "-", Role: "composition", Default: 0.0004, Range: formula.Window(0, 0.01)},
			},
			Outputs:  speed(),
			Citation: "O. Cramer, The variation of the specific heat ratio and the speed of sound in air with temperature, pressure, humidity, and CO2 concentration, J. Acoust. Soc. Am. 93(5), 2510-2516 (1993).",
			Eval:     formula.Fn4(AirCramer),
		},
		{
			Name:     "SpeedOfSoundFreshWaterMarczak",
			Category: category,
			Summary:  "pure water, fifth-order polynomial in temperature",
			Params:   []formula.Param{tempParam(20, formula.Window(0, 95))},
			Outputs:  speed(),
			Citation: "W. Marczak, Water as a standard in the measurements of speed of sound in liquids, J. Acoust. Soc. Am. 102(5), 2776-2779 (1997).",
			Eval:     formula.Fn1(FreshWaterMarczak),
		},
		{
			Name:     "SpeedOfSoundFreshWaterDelGrossoMader",
			Category: category,
			Summary:  "pure water, fifth-order polynomial in temperature",
			Params:   []formula.Param{tempParam(20, formula.Window(0, 95))},
			Outputs:  speed(),
			Citation: "V. A. Del Grosso and C. W. Mader, Speed of sound in pure water, J. Acoust. Soc. Am. 52, 1442-1446 (1972).",
			Eval:     formula.Fn1(FreshWaterDelGrossoMader),
		},
		{
			Name:     "SpeedOfSoundFreshWaterLubbersGraaff",
			Category: category,
			Summary:  "pure water, simplified quadratic",
			Params:   []formula.Param{tempParam(20, formula.Window(15, 35))},
			Outputs:  speed(),
			Citation: "J. Lubbers and R. Graaff, A simple and accurate formula for the sound velocity in water, Ultrasound Med. Biol. 24(7), 1065-1068 (1998).",
			Eval:     formula.Fn1(FreshWaterLubbersGraaff),
		},
		{
			Name:     "SpeedOfSoundFreshWaterLubbersGraaffWide",
			Category: category,
			Summary:  "pure water, quadratic fitted over 10-40 °C",
			Params:   []formula.Param{tempParam(20, formula.Window(10, 40))},
			Outputs:  speed(),
			Citation: "J. Lubbers and R. Graaff, A simple and accurate formula for the sound velocity in water, Ultrasound Med. Biol. 24(7), 1065-1068 (1998).",
			Eval:     formula.Fn1(FreshWaterLubbersGraaffWide),
		},
		{
			Name:     "SpeedOfSoundSeaWaterCoppens",
			Category: category,
			Summary:  "sea water, Coppens (1981), depth in km",
			Params: []formula.Param{
				{Name: "depthKm", Unit: "km", Role: "depth", Default: 0, Range: formula.Window(0, 4)},
				salParam(formula.Window(0, 45)),
				tempParam(10, formula.Window(0, 35)),
			},
			Outputs:  speed(),
			Citation: "A. B. Coppens, Simple equations for the speed of sound in Neptunian waters, J. Acoust. Soc. Am. 69(3), 862-863 (1981).",
			Eval:     formula.Fn3(SeaWaterCoppens),
		},
		{
			Name:     "SpeedOfSoundSeaWaterMackenzie",
			Category: category,
			Summary:  "sea water, nine-term equation",
			Params:   []formula.Param{depthParam(0, mackenzieWindows[0]), salParam(mackenzieWindows[1]), tempParam(10, mackenzieWindows[2])},
			Outputs:  speed(),
			Citation: "K. V. Mackenzie, Nine-term equation for the sound speed in the oceans, J. Acoust. Soc. Am. 70(3), 807-812 (1981).",
			Eval:     formula.Fn3(SeaWaterMackenzie),
		},
		{
			Name:     "SpeedOfSoundSeaWaterMedwin",
			Category: category,
			Summary:  "sea water, simple equation for the upper 1000 m",
			Params:   []formula.Param{depthParam(0, medwinWindows[0]), salParam(medwinWindows[1]), tempParam(10, medwinWindows[2])},
			Outputs:  speed(),
			Citation: "H. Medwin, Speed of sound in water: a simple equation for realistic parameters, J. Acoust. Soc. Am. 58(6), 1318-1319 (1975).",
			Eval:     formula.Fn3(SeaWaterMedwin),
		},
		{
			Name:     "SpeedOfSoundSeaWaterLeroy69",
			Category: category,
			Summary:  "sea water, Leroy (1969) simple equation",
			Params:   []formula.Param{depthParam(0, formula.Window(0, 1000)), salParam(formula.Window(30, 38)), tempParam(10, formula.Window(-2, 24.5))},
			Outputs:  speed(),
			Citation: "C. C. Leroy, Development of simple equations for accurate and more realistic calculation of the speed of sound in seawater, J. Acoust. Soc. Am. 46, 216-226 (1969).",
			Eval:     formula.Fn3(SeaWaterLeroy69),
		},
		{
			Name:     "SpeedOfSoundSeaWaterLeroyEtAl2008",
			Category: category,
			Summary:  "sea water, Leroy, Robinson and Goldsmith (2008), all oceans",
			Params: []formula.Param{
				depthParam(0, formula.Window(0, 12000)),
				salParam(formula.Window(0, 42)),
				tempParam(10, formula.Window(-2, 34)),
				{Name: "latitudeDeg", Unit: "deg", Role: "latitude", Default: 45, Range: formula.Window(-90, 90)},
			},
			Outputs:  speed(),
			Citation: "C. C. Leroy, S. P. Robinson and M. J. Goldsmith, A new equation for the accurate calculation of sound speed in all oceans, J. Acoust. Soc. Am. 124(5), 2774-2782 (2008).",
			Eval:     formula.Fn4(SeaWaterLeroy2008),
		},
		{
			Name:     "SpeedOfSoundSeaWaterDelGrosso",
			Category: category,
			Summary:  "sea water, NRL II equation, gauge pressure in kg/cm²",
			Params: []formula.Param{
				{Name: "pressureKgCm2", Unit: "kg/cm²", Role: "pressure", Default: 0, Range: formula.Window(0, 1000)},
				salParam(formula.Window(30, 40)),
				tempParam(10, formula.Window(0, 30)),
			},
			Outputs:  speed(),
			Citation: "V. A. Del Grosso, New equation for the speed of sound in natural waters (with comparisons to other equations), J. Acoust. Soc. Am. 56(4), 1084-1091 (1974).",
			Eval:     formula.Fn3(SeaWaterDelGrosso),
		},
		{
			Name:     "SpeedOfSoundSeaWaterChenMillero",
			Category: category,
			Summary:  "sea water, UNESCO algorithm, pressure in bar",
			Params: []formula.Param{
				{Name: "pressureBar", Unit: "bar", Role: "pressure", Default: 0, Range: formula.Window(0, 1000)},
				salParam(formula.Window(0, 40)),
				tempParam(10, formula.Window(0, 40)),
			},
			Outputs:  speed(),
			Citation: "C. Chen and F. J. Millero, Speed of sound in seawater at high pressures, J. Acoust. Soc. Am. 62(5), 1129-1135 (1977); N. P. Fofonoff and R. C. Millard, UNESCO Tech. Pap. Mar. Sci. 44 (1983).",
			Eval:     formula.Fn3(SeaWaterChenMillero),
		},
		{
			Name:     "SpeedOfSoundSeaWaterWilson",
			Category: category,
			Summary:  "sea water, Wilson (1960), gauge pressure in kg/cm²",
			Params: []formula.Param{
				{Name: "pressureKgCm2", Unit: "kg/cm²", Role: "pressure", Default: 1, Range: formula.Window(1, 1000)},
				salParam(formula.Window(0, 37)),
				tempParam(10, formula.Window(-4, 30)),
			},
			Outputs:  speed(),
			Citation: "W. D. Wilson, Equation for the speed of sound in sea water, J. Acoust. Soc. Am. 32(10), 1357 (1960).",
			Eval:     formula.Fn3(SeaWaterWilson),
		},
		{
			Name:     "SpeedOfSoundSeaWaterSkone",
			Category: category,
			Summary:  "sea water, first of Medwin, Mackenzie, Coppens whose window holds the inputs",
			Params:   []formula.Param{depthParam(0, nil), salParam(nil), tempParam(10, nil)},
			Outputs:  speed(),
			Citation: "Range-selected combination of Medwin (1975), Mackenzie (1981) and Coppens (1981).",
			Eval:     skoneRules.EvalFunc(),
		},
	}
}
