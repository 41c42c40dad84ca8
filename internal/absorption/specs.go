package absorption

import "github.com/san-kum/sonarlab/internal/formula"

const category = "absorption"

func param(name, unit, role string, def float64, r *formula.Range) formula.Param {
	return formula.Param{Name: name, Unit: unit, Role: role, Default: def, Range: r}
}

const fgCitation = "R. E. Francois and G. R. Garrison, Sound absorption based on ocean measurements, J. Acoust. Soc. Am. 72(3), 896-907 and 72(6), 1879-1890 (1982)."

// Specs returns the catalog entries of this package.
func Specs() []*formula.Spec {
	return []*formula.Spec{
		{
			Name:     "AbsorptionSoundFreshWaterFrancoisGarrison",
			Category: category,
			Summary:  "pure water viscous absorption, Francois-Garrison",
			Params: []formula.Param{
				param("frequencyKHz", "kHz", "frequency", 10, formula.Window(0.2, 1000)),
				param("temperatureC", "°C", "temperature", 10, formula.Window(0, 30)),
				param("depthM", "m", "depth", 0, formula.Window(0, 7000)),
			},
			Outputs:  formula.Scalar("alpha", "dB/km"),
			Citation: fgCitation,
			Eval:     formula.Fn3(FreshWaterFrancoisGarrison),
		},
		{
			Name:     "AbsorptionSoundSeaWaterFrancoisGarrison",
			Category: category,
			Summary:  "boric acid, magnesium sulfate and pure water absorption",
			Params: []formula.Param{
				param("frequencyKHz", "kHz", "frequency", 10, formula.Window(0.2, 1000)),
				param("temperatureC", "°C", "temperature", 10, formula.Window(-2, 30)),
				param("salinityPpt", "ppt", "salinity", 35, formula.Window(30, 35)),
				param("depthM", "m", "depth", 0, formula.Window(0, 7000)),
				param("pH", "pH", "acidity", 8, formula.Window(7.7, 8.3)),
			},
			Outputs:  formula.Scalar("alpha", "dB/km"),
			Citation: fgCitation,
			Eval:     formula.Fn5(SeaWaterFrancoisGarrison),
		},
		{
			Name:     "RelaxationFrequencyBoricAcid",
			Category: category,
			Summary:  "boric acid relaxation frequency",
			Params: []formula.Param{
				param("temperatureC", "°C", "temperature", 10, formula.Window(-2, 30)),
				param("salinityPpt", "ppt", "salinity", 35, formula.Window(0, 45)),
			},
			Outputs:  formula.Scalar("frequency", "kHz"),
			Citation: fgCitation,
			Eval:     formula.Fn2(RelaxationFrequencyBoricAcid),
		},
		{
			Name:     "RelaxationFrequencyMagnesiumSulfate",
			Category: category,
			Summary:  "magnesium sulfate relaxation frequency",
			Params: []formula.Param{
				param("temperatureC", "°C", "temperature", 10, formula.Window(-2, 30)),
				param("salinityPpt", "ppt", "salinity", 35, formula.Window(0, 45)),
			},
			Outputs:  formula.Scalar("frequency", "kHz"),
			Citation: fgCitation,
			Eval:     formula.Fn2(RelaxationFrequencyMagnesiumSulfate),
		},
		{
			Name:     "AbsorptionAlphaFisherSimmons",
			Category: category,
			Summary:  "sea water absorption, Fisher-Simmons, pressure from depth",
			Params: []formula.Param{
				param("frequencyHz", "Hz", "frequency", 10000, formula.Window(10000, 400000)),
				param("temperatureC", "°C", "temperature", 10, formula.Window(4, 30)),
				param("depthM", "m", "depth", 0, formula.Window(0, 4000)),
			},
			Outputs:  formula.Scalar("alpha", "dB/m"),
			Citation: "F. H. Fisher and V. P. Simmons, Sound absorption in sea water, J. Acoust. Soc. Am. 62(3), 558-564 (1977).",
			Eval:     formula.Fn3(FisherSimmons),
		},
		{
			Name:     "AbsorptionAinslieMcColm",
			Category: category,
			Summary:  "simplified sea water absorption, Ainslie-McColm",
			Params: []formula.Param{
				param("frequencyKHz", "kHz", "frequency", 10, formula.Window(0.1, 1000)),
				param("temperatureC", "°C", "temperature", 10, formula.Window(-6, 35)),
				param("salinityPpt", "ppt", "salinity", 35, formula.Window(5, 50)),
				param("depthKm", "km", "depth", 0, formula.Window(0, 7)),
				param("pH", "pH", "acidity", 8, formula.Window(7.7, 8.3)),
			},
			Outputs:  formula.Scalar("alpha", "dB/km"),
			Citation: "M. A. Ainslie and J. G. McColm, A simplified formula for viscous and chemical absorption in sea water, J. Acoust. Soc. Am. 103(3), 1671-1672 (1998).",
			Eval:     formula.Fn5(AinslieMcColm),
		},
		{
			Name:     "AbsorptionThorp",
			Category: category,
			Summary:  "low-frequency sea water absorption, Thorp",
			Params: []formula.Param{
				param("frequencyKHz", "kHz", "frequency", 10, formula.Window(0.1, 50)),
			},
			Outputs:  formula.Scalar("alpha", "dB/km"),
			Citation: "W. H. Thorp, Analytic description of the low-frequency attenuation coefficient, J. Acoust. Soc. Am. 42, 270 (1967).",
			Eval:     formula.Fn1(Thorp),
		},
		{
			Name:     "AbsorptionSoundAirISO9613",
			Category: category,
			Summary:  "atmospheric absorption of pure tones, ISO 9613-1",
			Params: []formula.Param{
				param("frequencyHz", "Hz", "frequency", 1000, formula.Window(50, 10000)),
				param("temperatureC", "°C", "temperature", 20, formula.Window(-20, 50)),
				param("relativeHumidityPct", "%", "humidity", 50, formula.Window(10, 100)),
				param("pressureKPa", "kPa", "pressure", 101.325, formula.Window(0, 200)),
			},
			Outputs:  formula.Scalar("alpha", "dB/m"),
			Citation: "ISO 9613-1:1993, Acoustics - Attenuation of sound during propagation outdoors - Part 1.",
			Eval:     formula.Fn4(AirISO9613),
		},
		{
			Name:     "AbsorptionSoundSeaWaterTabulated",
			Category: category,
			Summary:  "tabulated sea water absorption at S=35, pH 8, surface; exact keys only",
			Params: []formula.Param{
				param("temperatureC", "°C", "temperature", 10, nil),
				param("frequencyKHz", "kHz", "frequency", 10, nil),
			},
			Outputs:  formula.Scalar("alpha", "dB/km"),
			Citation: fgCitation,
			Eval: func(x []float64) ([]float64, []formula.Diagnostic, error) {
				v, err := SeaWaterTabulated(x[0], x[1])
				if err != nil {
					return nil, nil, err
				}
				return []float64{v}, nil, nil
			},
		},
	}
}
