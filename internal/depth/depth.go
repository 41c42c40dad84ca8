package depth

import (
	"math"

	"github.com/san-kum/sonarlab/internal/formula"
)

func sin2(latitudeDeg float64) float64 {
	s := math.Sin(latitudeDeg * math.Pi / 180)
	return s * s
}

// GravityAtLatitude returns the International Gravity Formula value [m/s²]
// used by the UNESCO algorithms.
func GravityAtLatitude(latitudeDeg float64) float64 {
	x := sin2(latitudeDeg)
	return 9.780318 * (1 + 5.2788e-3*x + 2.36e-5*x*x)
}

// DepthToPressureLeroyParthiot returns the pressure [MPa] at depth [m] and
// latitude [degrees] in the standard ocean (Leroy and Parthiot 1998).
func DepthToPressureLeroyParthiot(depthM, latitudeDeg float64) float64 {
	z := depthM
	h := 1.00818e-2*z + 2.465e-8*z*z - 1.25e-13*z*z*z + 2.8e-19*z*z*z*z
	g := 9.7803 * (1 + 5.3e-3*sin2(latitudeDeg))
	k := (g - 2e-5*z) / (9.80612 - 2e-5*z)
	return h * k
}

// PressureToDepthLeroyParthiot returns the depth [m] at pressure [MPa] and
// latitude [degrees] in the standard ocean.
func PressureToDepthLeroyParthiot(pressureMPa, latitudeDeg float64) float64 {
	p := pressureMPa
	num := 972.659*p - 0.22512*p*p + 2.279e-4*p*p*p - 1.82e-7*p*p*p*p
	return num / (GravityAtLatitude(latitudeDeg) + 1.092e-4*p)
}

// DepthToPressureLeroyParthiotCorrected applies c to the standard-ocean pressure.
func DepthToPressureLeroyParthiotCorrected(depthM, latitudeDeg float64, c formula.Correction) float64 {
	return c.Apply(DepthToPressureLeroyParthiot(depthM, latitudeDeg))
}

// PressureToDepthLeroyParthiotCorrected applies c to the standard-ocean depth.
func PressureToDepthLeroyParthiotCorrected(pressureMPa, latitudeDeg float64, c formula.Correction) float64 {
	return c.Apply(PressureToDepthLeroyParthiot(pressureMPa, latitudeDeg))
}

// DepthToPressureSaunders returns the pressure [dbar] at depth [m] and
// latitude [degrees] (Saunders 1981).
func DepthToPressureSaunders(depthM, latitudeDeg float64) float64 {
	c1 := (5.92 + 5.25*sin2(latitudeDeg)) * 1e-3
	a := 1 - c1
	return (a - math.Sqrt(a*a-8.84e-6*depthM)) / 4.42e-6
}

// PressureToDepthUNESCO returns the depth [m] at pressure [dbar] and
// latitude [degrees] (Fofonoff and Millard 1983).
func PressureToDepthUNESCO(pressureDbar, latitudeDeg float64) float64 {
	p := pressureDbar
	gr := GravityAtLatitude(latitudeDeg) + 1.092e-6*p
	d := (((-1.82e-15*p+2.279e-10)*p-2.2512e-5)*p + 9.72659) * p
	return d / gr
}

// PressureHydrostatic returns ρ·g·z [Pa] for a column of uniform density.
func PressureHydrostatic(depthM, densityKgM3, gravityMS2 float64) float64 {
	return densityKgM3 * gravityMS2 * depthM
}
