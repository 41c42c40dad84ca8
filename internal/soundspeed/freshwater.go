package soundspeed

// FreshWaterMarczak returns the speed of sound in pure water [m/s] at
// temperature [°C] (ITS-90), Marczak (1997) fifth-order fit.
func FreshWaterMarczak(temperatureC float64) float64 {
	t := temperatureC
	return 1.402385e3 + 5.038813*t - 5.799136e-2*t*t + 3.287156e-4*t*t*t -
		1.398845e-6*t*t*t*t + 2.787860e-9*t*t*t*t*t
}

// FreshWaterDelGrossoMader returns the speed of sound in pure water [m/s]
// at temperature [°C], Del Grosso and Mader (1972).
func FreshWaterDelGrossoMader(temperatureC float64) float64 {
	t := temperatureC
	return 1402.388 + 5.03711*t - 5.80852e-2*t*t + 3.3420e-4*t*t*t -
		1.47800e-6*t*t*t*t + 3.1464e-9*t*t*t*t*t
}

// FreshWaterLubbersGraaff is the simplified Lubbers and Graaff (1998)
// quadratic for 15-35 °C.
func FreshWaterLubbersGraaff(temperatureC float64) float64 {
	t := temperatureC
	return 1404.3 + 4.7*t - 0.04*t*t
}

// FreshWaterLubbersGraaffWide is the Lubbers and Graaff (1998) quadratic
// fitted over 10-40 °C.
func FreshWaterLubbersGraaffWide(temperatureC float64) float64 {
	t := temperatureC
	return 1405.03 + 4.624*t - 3.83e-2*t*t
}
