package sonar

import "math"

// PropagationLossSpherical returns 20·log10(r) [dB].
func PropagationLossSpherical(rangeM float64) float64 {
	return 20 * math.Log10(rangeM)
}

// PropagationLossCylindrical returns 10·log10(r) [dB].
func PropagationLossCylindrical(rangeM float64) float64 {
	return 10 * math.Log10(rangeM)
}

// PropagationLossSphericalAbsorption adds absorption [dB/km] over the path
// to spherical spreading.
func PropagationLossSphericalAbsorption(rangeM, alphaDBPerKm float64) float64 {
	return PropagationLossSpherical(rangeM) + alphaDBPerKm*rangeM/1000
}

// PropagationLossMixed spreads spherically up to transitionRangeM and
// cylindrically beyond it, plus absorption [dB/km] over the whole path.
func PropagationLossMixed(rangeM, transitionRangeM, alphaDBPerKm float64) float64 {
	absorption := alphaDBPerKm * rangeM / 1000
	if rangeM <= transitionRangeM {
		return PropagationLossSpherical(rangeM) + absorption
	}
	return PropagationLossSpherical(transitionRangeM) +
		10*math.Log10(rangeM/transitionRangeM) + absorption
}
