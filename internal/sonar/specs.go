package sonar

import "github.com/san-kum/sonarlab/internal/formula"

const (
	category = "sonar"
	urick    = "R. J. Urick, Principles of Underwater Sound, 3rd ed. (1983)."
)

func p(name, unit, role string, def float64) formula.Param {
	return formula.Param{Name: name, Unit: unit, Role: role, Default: def}
}

func pr(name, unit, role string, def float64, r *formula.Range) formula.Param {
	return formula.Param{Name: name, Unit: unit, Role: role, Default: def, Range: r}
}

func db(name string) []formula.Output {
	return formula.Scalar(name, "dB")
}

// Specs returns the catalog entries of this package.
func Specs() []*formula.Spec {
	rangeM := pr("rangeM", "m", "range", 1000, formula.Window(1, 1e6))
	return []*formula.Spec{
		{
			Name:     "SourceLevelFromPower",
			Category: category,
			Summary:  "source level of a projector, 170.8 + 10·log10(P) + DI",
			Params:   []formula.Param{pr("powerW", "W", "power", 1000, formula.Window(0, 1e7)), p("directivityIndexDB", "dB", "directivity", 0)},
			Outputs:  formula.Scalar("sourceLevel", "dB re 1 µPa at 1 m"),
			Citation: urick,
			Eval:     formula.Fn2(SourceLevelFromPower),
		},
		{
			Name:     "IntensityLevel",
			Category: category,
			Summary:  "intensity level re 0.67e-18 W/m²",
			Params:   []formula.Param{p("intensityWm2", "W/m²", "intensity", 1e-6)},
			Outputs:  db("level"),
			Citation: urick,
			Eval:     formula.Fn1(IntensityLevel),
		},
		{
			Name:     "SoundPressureLevel",
			Category: category,
			Summary:  "20·log10(p/pref)",
			Params:   []formula.Param{p("pressurePa", "Pa", "pressure", 1), p("referencePa", "Pa", "reference", 1e-6)},
			Outputs:  db("level"),
			Citation: urick,
			Eval:     formula.Fn2(SoundPressureLevel),
		},
		{
			Name:     "IntensityFromPressure",
			Category: category,
			Summary:  "plane-wave intensity p²/(ρc)",
			Params:   []formula.Param{p("pressurePa", "Pa", "pressure", 1), p("densityKgM3", "kg/m³", "density", 1025), p("soundSpeedMS", "m/s", "speed", 1500)},
			Outputs:  formula.Scalar("intensity", "W/m²"),
			Citation: urick,
			Eval:     formula.Fn3(IntensityFromPressure),
		},
		{
			Name:     "PropagationLossSpherical",
			Category: category,
			Summary:  "spherical spreading, 20·log10(r)",
			Params:   []formula.Param{rangeM},
			Outputs:  db("loss"),
			Citation: urick,
			Eval:     formula.Fn1(PropagationLossSpherical),
		},
		{
			Name:     "PropagationLossCylindrical",
			Category: category,
			Summary:  "cylindrical spreading, 10·log10(r)",
			Params:   []formula.Param{rangeM},
			Outputs:  db("loss"),
			Citation: urick,
			Eval:     formula.Fn1(PropagationLossCylindrical),
		},
		{
			Name:     "PropagationLossSphericalAbsorption",
			Category: category,
			Summary:  "spherical spreading plus absorption",
			Params:   []formula.Param{rangeM, pr("alphaDBPerKm", "dB/km", "absorption", 1, formula.Window(0, 1000))},
			Outputs:  db("loss"),
			Citation: urick,
			Eval:     formula.Fn2(PropagationLossSphericalAbsorption),
		},
		{
			Name:     "PropagationLossMixed",
			Category: category,
			Summary:  "spherical to the transition range, cylindrical beyond, plus absorption",
			Params: []formula.Param{
				rangeM,
				pr("transitionRangeM", "m", "range", 100, formula.Window(1, 1e6)),
				pr("alphaDBPerKm", "dB/km", "absorption", 1, formula.Window(0, 1000)),
			},
			Outputs:  db("loss"),
			Citation: urick,
			Eval:     formula.Fn3(PropagationLossMixed),
		},
		{
			Name:     "TargetStrengthSphere",
			Category: category,
			Summary:  "large rigid sphere, 10·log10(a²/4)",
			Params:   []formula.Param{pr("radiusM", "m", "size", 1, formula.Window(0, 1e4))},
			Outputs:  db("targetStrength"),
			Citation: urick,
			Eval:     formula.Fn1(TargetStrengthSphere),
		},
		{
			Name:     "TargetStrengthCylinder",
			Category: category,
			Summary:  "cylinder at broadside, 10·log10(aL²/2λ)",
			Params:   []formula.Param{p("radiusM", "m", "size", 1), p("lengthM", "m", "size", 10), p("wavelengthM", "m", "wavelength", 0.15)},
			Outputs:  db("targetStrength"),
			Citation: urick,
			Eval:     formula.Fn3(TargetStrengthCylinder),
		},
		{
			Name:     "TargetStrengthPlate",
			Category: category,
			Summary:  "flat plate at normal incidence, 20·log10(A/λ)",
			Params:   []formula.Param{p("areaM2", "m²", "size", 1), p("wavelengthM", "m", "wavelength", 0.15)},
			Outputs:  db("targetStrength"),
			Citation: urick,
			Eval:     formula.Fn2(TargetStrengthPlate),
		},
		{
			Name:     "TargetStrengthFromIntensity",
			Category: category,
			Summary:  "10·log10(reflected/incident)",
			Params:   []formula.Param{p("reflected", "W/m²", "intensity", 1), p("incident", "W/m²", "intensity", 1)},
			Outputs:  db("targetStrength"),
			Citation: urick,
			Eval:     formula.Fn2(TargetStrengthFromIntensity),
		},
		{
			Name:     "DetectionIndex",
			Category: category,
			Summary:  "((Ms - Mn)/σ)²",
			Params:   []formula.Param{p("signalMean", "-", "statistic", 3), p("noiseMean", "-", "statistic", 1), p("noiseStdDev", "-", "statistic", 1)},
			Outputs:  formula.Scalar("detectionIndex", "-"),
			Citation: urick,
			Eval:     formula.Fn3(DetectionIndex),
		},
		{
			Name:     "DetectionThresholdKnownSignal",
			Category: category,
			Summary:  "matched filter, 10·log10(d/2t)",
			Params:   []formula.Param{p("detectionIndex", "-", "statistic", 16), p("durationS", "s", "time", 1)},
			Outputs:  db("threshold"),
			Citation: urick,
			Eval:     formula.Fn2(DetectionThresholdKnownSignal),
		},
		{
			Name:     "DetectionThresholdUnknownSignal",
			Category: category,
			Summary:  "energy detector, 5·log10(dW/t)",
			Params:   []formula.Param{p("detectionIndex", "-", "statistic", 16), p("bandwidthHz", "Hz", "bandwidth", 100), p("durationS", "s", "time", 1)},
			Outputs:  db("threshold"),
			Citation: urick,
			Eval:     formula.Fn3(DetectionThresholdUnknownSignal),
		},
		{
			Name:     "DirectivityIndexLineArray",
			Category: category,
			Summary:  "long line array, 10·log10(2L/λ)",
			Params:   []formula.Param{p("lengthM", "m", "size", 10), p("wavelengthM", "m", "wavelength", 0.15)},
			Outputs:  db("directivityIndex"),
			Citation: urick,
			Eval:     formula.Fn2(DirectivityIndexLineArray),
		},
		{
			Name:     "DirectivityIndexCircularPiston",
			Category: category,
			Summary:  "baffled circular piston, 20·log10(πD/λ)",
			Params:   []formula.Param{p("diameterM", "m", "size", 1), p("wavelengthM", "m", "wavelength", 0.15)},
			Outputs:  db("directivityIndex"),
			Citation: urick,
			Eval:     formula.Fn2(DirectivityIndexCircularPiston),
		},
		{
			Name:     "SignalExcessActive",
			Category: category,
			Summary:  "SL - 2TL + TS - (NL - DI) - DT",
			Params: []formula.Param{
				p("sourceLevel", "dB", "level", 220), p("transmissionLoss", "dB", "loss", 60),
				p("targetStrength", "dB", "level", 10), p("noiseLevel", "dB", "level", 70),
				p("directivityIndex", "dB", "directivity", 20), p("detectionThreshold", "dB", "threshold", 10),
			},
			Outputs:  db("signalExcess"),
			Citation: urick,
			Eval:     formula.Fn6(SignalExcessActive),
		},
		{
			Name:     "SignalExcessPassive",
			Category: category,
			Summary:  "SL - TL - (NL - DI) - DT",
			Params: []formula.Param{
				p("sourceLevel", "dB", "level", 140), p("transmissionLoss", "dB", "loss", 60),
				p("noiseLevel", "dB", "level", 70), p("directivityIndex", "dB", "directivity", 20),
				p("detectionThreshold", "dB", "threshold", 10),
			},
			Outputs:  db("signalExcess"),
			Citation: urick,
			Eval:     formula.Fn5(SignalExcessPassive),
		},
		{
			Name:     "Wavelength",
			Category: category,
			Summary:  "c/f",
			Params:   []formula.Param{p("soundSpeedMS", "m/s", "speed", 1500), pr("frequencyHz", "Hz", "frequency", 10000, formula.Window(0, 1e7))},
			Outputs:  formula.Scalar("wavelength", "m"),
			Citation: urick,
			Eval:     formula.Fn2(Wavelength),
		},
		{
			Name:     "DopplerShiftActive",
			Category: category,
			Summary:  "two-way Doppler shift, 2vf/c",
			Params:   []formula.Param{p("frequencyHz", "Hz", "frequency", 10000), p("radialSpeedMS", "m/s", "speed", 5), p("soundSpeedMS", "m/s", "speed", 1500)},
			Outputs:  formula.Scalar("shift", "Hz"),
			Citation: urick,
			Eval:     formula.Fn3(DopplerShiftActive),
		},
		{
			Name:     "NoiseLevelInBand",
			Category: category,
			Summary:  "spectrum level plus 10·log10(W)",
			Params:   []formula.Param{p("spectrumLevelDB", "dB", "level", 60), p("bandwidthHz", "Hz", "bandwidth", 100)},
			Outputs:  db("noiseLevel"),
			Citation: urick,
			Eval:     formula.Fn2(NoiseLevelInBand),
		},
	}
}
