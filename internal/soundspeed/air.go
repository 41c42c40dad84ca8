package soundspeed

import "math"

const (
	gasConstant      = 8.314462618 // [J mol-1 K-1]
	molarMassDryAir  = 0.0289645   // [kg mol-1]
	heatRatioDryAir  = 1.4
	celsiusToKelvin  = 273.15
	dryAirTriplePtK  = 273.16 // offset used by the 20.05*sqrt(T) approximation
	dryAirSqrtFactor = 20.05
)

// DryAir returns the speed of sound in dry air [m/s] for temperature [°C]
// using c = 20.05·sqrt(T + 273.16).
func DryAir(temperatureC float64) float64 {
	return dryAirSqrtFactor * math.Sqrt(temperatureC+dryAirTriplePtK)
}

// AirIdealGas returns sqrt(γRT/M) [m/s] for dry air at temperature [°C].
func AirIdealGas(temperatureC float64) float64 {
	return math.Sqrt(heatRatioDryAir * gasConstant * (temperatureC + celsiusToKelvin) / molarMassDryAir)
}

// Cramer (1993) coefficients.
var cramer = [16]float64{
	331.5024, 0.603055, -0.000528,
	51.471935, 0.1495874, -0.000782,
	-1.82e-7, 3.73e-8, -2.93e-10,
	-85.20931, -0.228525, 5.91e-5,
	-2.835149, -2.15e-13, 29.179762, 0.000486,
}

// AirCramer returns the speed of sound in humid air [m/s] following Cramer
// (1993), where temperature is in °C, pressure in Pa, and the water vapour and
// CO2 contents are mole fractions.
func AirCramer(temperatureC, pressurePa, waterMoleFraction, co2MoleFraction float64) float64 {
	a := cramer
	t := temperatureC
	xw := waterMoleFraction
	xc := co2MoleFraction
	p := pressurePa
	return a[0] + a[1]*t + a[2]*t*t +
		(a[3]+a[4]*t+a[5]*t*t)*xw +
		(a[6]+a[7]*t+a[8]*t*t)*p +
		(a[9]+a[10]*t+a[11]*t*t)*xc +
		a[12]*xw*xw + a[13]*p*p + a[14]*xc*xc + a[15]*xw*p*xc
}
