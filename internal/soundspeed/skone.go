package soundspeed

import "github.com/san-kum/sonarlab/internal/formula"

// Validity windows of the sea-water equations, in (depth, salinity, temperature) order.
var (
	medwinWindows    = []*formula.Range{formula.Window(0, 1000), formula.Window(0, 45), formula.Window(0, 35)}
	mackenzieWindows = []*formula.Range{formula.Window(0, 8000), formula.Window(25, 40), formula.Window(-2, 30)}
	coppensWindows   = []*formula.Range{formula.Window(0, 4000), formula.Window(0, 45), formula.Window(0, 35)}
)

// skoneRules tries the equations from the narrowest to the widest depth
// window. Coppens is both the last rule and the fallback.
var skoneRules = formula.Rules{
	{
		Name:    "Medwin",
		Windows: medwinWindows,
		Eval:    func(x []float64) float64 { return SeaWaterMedwin(x[0], x[1], x[2]) },
	},
	{
		Name:    "Mackenzie",
		Windows: mackenzieWindows,
		Eval:    func(x []float64) float64 { return SeaWaterMackenzie(x[0], x[1], x[2]) },
	},
	{
		Name:    "Coppens",
		Windows: coppensWindows,
		Eval:    func(x []float64) float64 { return SeaWaterCoppens(x[0]/1000, x[1], x[2]) },
	},
}

// SeaWaterSkone selects an equation by validity window for depth [m],
// salinity [ppt] and temperature [°C]. It returns the speed [m/s], the name of
// the equation used, and a NoRuleMatched diagnostic when no window contained
// the inputs and the Coppens fallback was used.
func SeaWaterSkone(depthM, salinityPpt, temperatureC float64) (float64, string, []formula.Diagnostic) {
	return skoneRules.Evaluate([]float64{depthM, salinityPpt, temperatureC})
}
