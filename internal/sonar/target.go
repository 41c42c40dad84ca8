package sonar

import "math"

// TargetStrengthSphere returns 10·log10(a²/4) [dB] for a large rigid
// sphere of radius a [m].
func TargetStrengthSphere(radiusM float64) float64 {
	return 10 * math.Log10(radiusM*radiusM/4)
}

// TargetStrengthCylinder returns the broadside target strength
// 10·log10(aL²/2λ) [dB] of a cylinder.
func TargetStrengthCylinder(radiusM, lengthM, wavelengthM float64) float64 {
	return 10 * math.Log10(radiusM*lengthM*lengthM/(2*wavelengthM))
}

// TargetStrengthPlate returns the normal-incidence target strength
// 20·log10(A/λ) [dB] of a flat plate.
func TargetStrengthPlate(areaM2, wavelengthM float64) float64 {
	return 20 * math.Log10(areaM2/wavelengthM)
}

// TargetStrengthFromIntensity returns 10·log10(Ir/Ii), with the reflected
// intensity referred to 1 m from the target.
func TargetStrengthFromIntensity(reflected, incident float64) float64 {
	return 10 * math.Log10(reflected/incident)
}

// DirectivityIndexLineArray returns 10·log10(2L/λ) [dB] for a long line array.
func DirectivityIndexLineArray(lengthM, wavelengthM float64) float64 {
	return 10 * math.Log10(2*lengthM/wavelengthM)
}

// DirectivityIndexCircularPiston returns 20·log10(πD/λ) [dB] for a piston
// in a baffle.
func DirectivityIndexCircularPiston(diameterM, wavelengthM float64) float64 {
	return 20 * math.Log10(math.Pi*diameterM/wavelengthM)
}
